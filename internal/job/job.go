// Package job assembles the per-role launch plan of a distributed training job.
package job

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Justype/subprep/internal/launch"
	"github.com/Justype/subprep/internal/resource"
	"github.com/Justype/subprep/internal/utils"
)

// Flag names used in error messages and by the run command.
const (
	FlagName            = "name"
	FlagNumWorkers      = "num_workers"
	FlagWorkerResources = "worker_resources"
	FlagWorkerLaunchCmd = "worker_launch_cmd"
	FlagNumPS           = "num_ps"
	FlagPSResources     = "ps_resources"
	FlagPSLaunchCmd     = "ps_launch_cmd"
)

// Role names
const (
	RoleWorker = "worker"
	RolePS     = "ps"
)

var (
	// ErrMissingFlag indicates a required flag was not given
	ErrMissingFlag = errors.New("is absent")

	// ErrInvalidReplicas indicates a negative or too small replica count
	ErrInvalidReplicas = errors.New("invalid number of replicas")
)

// FlagError ties a validation failure to the flag that caused it.
type FlagError struct {
	Flag string
	Err  error
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("--%s: %v", e.Flag, e.Err)
}

func (e *FlagError) Unwrap() error {
	return e.Err
}

// Options are the raw job parameters as given on the command line.
type Options struct {
	Name            string
	NumWorkers      int
	WorkerResources string
	WorkerLaunchCmd string
	NumPS           int
	PSResources     string
	PSLaunchCmd     string
	Params          launch.Params
}

// Role is one replicated component of a job.
type Role struct {
	Name      string             `yaml:"name"`
	Replicas  int                `yaml:"replicas"`
	Resources *resource.Resource `yaml:"resources"`
	LaunchCmd string             `yaml:"launch_cmd,omitempty"`
}

// Plan is the validated, fully resolved description of a job.
type Plan struct {
	Name           string `yaml:"name"`
	InputPath      string `yaml:"input_path,omitempty"`
	CheckpointPath string `yaml:"checkpoint_path,omitempty"`
	SavedModelPath string `yaml:"saved_model_path,omitempty"`
	Roles          []Role `yaml:"roles"`
}

// Build validates opts against reg and resolves every role's launch command.
// Roles with zero replicas are left out of the plan.
func Build(ctx context.Context, opts Options, reg resource.Registry) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(opts.Name) == "" {
		return nil, &FlagError{Flag: FlagName, Err: ErrMissingFlag}
	}
	if opts.NumWorkers < 1 {
		return nil, &FlagError{
			Flag: FlagNumWorkers,
			Err:  fmt.Errorf("%w: %d, at least one worker is required", ErrInvalidReplicas, opts.NumWorkers),
		}
	}
	if opts.NumPS < 0 {
		return nil, &FlagError{
			Flag: FlagNumPS,
			Err:  fmt.Errorf("%w: %d", ErrInvalidReplicas, opts.NumPS),
		}
	}

	plan := &Plan{
		Name:           opts.Name,
		InputPath:      deref(opts.Params.InputPath),
		CheckpointPath: deref(opts.Params.CheckpointPath),
		SavedModelPath: deref(opts.Params.SavedModelPath),
	}

	worker, err := buildRole(RoleWorker, opts.NumWorkers, opts.WorkerResources, FlagWorkerResources,
		opts.WorkerLaunchCmd, opts.Params, reg)
	if err != nil {
		return nil, err
	}
	plan.Roles = append(plan.Roles, *worker)

	if opts.NumPS > 0 {
		ps, err := buildRole(RolePS, opts.NumPS, opts.PSResources, FlagPSResources,
			opts.PSLaunchCmd, opts.Params, reg)
		if err != nil {
			return nil, err
		}
		plan.Roles = append(plan.Roles, *ps)
	}

	utils.PrintDebug("Built plan for job %s with %d role(s)", utils.StyleName(plan.Name), len(plan.Roles))
	return plan, nil
}

func buildRole(name string, replicas int, spec, specFlag, command string,
	params launch.Params, reg resource.Registry) (*Role, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, &FlagError{Flag: specFlag, Err: ErrMissingFlag}
	}
	res, err := resource.CreateResource(spec, reg)
	if err != nil {
		return nil, &FlagError{Flag: specFlag, Err: err}
	}

	resolved := launch.Resolve(command, params)
	if left := launch.Unresolved(resolved); len(left) > 0 {
		utils.PrintWarning("%s launch command still contains %s; the matching parameters were not given",
			name, strings.Join(left, ", "))
	}

	return &Role{
		Name:      name,
		Replicas:  replicas,
		Resources: res,
		LaunchCmd: resolved,
	}, nil
}

// Role returns the role with the given name, or nil.
func (p *Plan) Role(name string) *Role {
	for i := range p.Roles {
		if p.Roles[i].Name == name {
			return &p.Roles[i]
		}
	}
	return nil
}

// Total sums every role's resources multiplied by its replica count.
func (p *Plan) Total() resource.Map {
	total := resource.Map{}
	for _, r := range p.Roles {
		for name, v := range r.Resources.Map() {
			total[name] += v * int64(r.Replicas)
		}
	}
	return total
}

// Summary renders one human readable line per role.
func (p *Plan) Summary() []string {
	lines := make([]string, 0, len(p.Roles))
	for _, r := range p.Roles {
		lines = append(lines, fmt.Sprintf("%s x%d: memory %s, vcores %d",
			r.Name, r.Replicas, utils.FormatMebibytes(r.Resources.MemoryMB()), r.Resources.VCores()))
	}
	return lines
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
