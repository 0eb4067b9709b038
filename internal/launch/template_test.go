package launch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ptr(s string) *string { return &s }

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		command string
		params  Params
		want    string
	}{
		{
			name:    "partial bundle leaves unset placeholder",
			command: "run.sh --data %INPUT_PATH% --ckpt %CHECKPOINT_PATH%",
			params:  Params{InputPath: ptr("/d")},
			want:    "run.sh --data /d --ckpt %CHECKPOINT_PATH%",
		},
		{
			name:    "all placeholders",
			command: "python train.py --in=%INPUT_PATH% --job_dir=%CHECKPOINT_PATH% --export=%SAVED_MODEL_PATH%",
			params: Params{
				InputPath:      ptr("hdfs:///data"),
				CheckpointPath: ptr("hdfs:///ckpt"),
				SavedModelPath: ptr("hdfs:///model"),
			},
			want: "python train.py --in=hdfs:///data --job_dir=hdfs:///ckpt --export=hdfs:///model",
		},
		{
			name:    "every occurrence replaced",
			command: "%INPUT_PATH%:%INPUT_PATH%/%INPUT_PATH%",
			params:  Params{InputPath: ptr("x")},
			want:    "x:x/x",
		},
		{
			name:    "empty bundle is identity",
			command: "echo %INPUT_PATH% %SAVED_MODEL_PATH%",
			params:  Params{},
			want:    "echo %INPUT_PATH% %SAVED_MODEL_PATH%",
		},
		{
			name:    "set but empty value still substitutes",
			command: "ls %CHECKPOINT_PATH%/",
			params:  Params{CheckpointPath: ptr("")},
			want:    "ls /",
		},
		{
			name:    "unknown placeholders untouched",
			command: "run %OUTPUT_PATH% %input_path%",
			params:  Params{InputPath: ptr("/d")},
			want:    "run %OUTPUT_PATH% %input_path%",
		},
		{
			name:    "no placeholders",
			command: "sleep 10",
			params:  Params{InputPath: ptr("/d")},
			want:    "sleep 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.command, tt.params); got != tt.want {
				t.Errorf("Resolve(%q) = %q; want %q", tt.command, got, tt.want)
			}
		})
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	command := "cat %INPUT_PATH%"
	input := "/data"
	_ = Resolve(command, Params{InputPath: &input})
	if command != "cat %INPUT_PATH%" {
		t.Errorf("input command changed to %q", command)
	}
}

func TestPlaceholders(t *testing.T) {
	want := []string{"%INPUT_PATH%", "%CHECKPOINT_PATH%", "%SAVED_MODEL_PATH%"}
	if diff := cmp.Diff(want, Placeholders()); diff != "" {
		t.Errorf("Placeholders() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnresolved(t *testing.T) {
	command := Resolve("a %INPUT_PATH% b %SAVED_MODEL_PATH% c %CHECKPOINT_PATH%",
		Params{CheckpointPath: ptr("/ckpt")})

	want := []string{"%INPUT_PATH%", "%SAVED_MODEL_PATH%"}
	if diff := cmp.Diff(want, Unresolved(command)); diff != "" {
		t.Errorf("Unresolved() mismatch (-want +got):\n%s", diff)
	}
	if got := Unresolved("plain"); got != nil {
		t.Errorf("Unresolved(plain) = %v; want nil", got)
	}
}
