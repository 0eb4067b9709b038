// Package launch substitutes job parameters into user launch commands.
package launch

import (
	"strings"
)

// Placeholder keywords recognised in launch commands.
const (
	InputPath      = "INPUT_PATH"
	CheckpointPath = "CHECKPOINT_PATH"
	SavedModelPath = "SAVED_MODEL_PATH"
)

// Params holds the job parameters a launch command may refer to.
// A nil field is unset and its placeholder is left as is.
type Params struct {
	InputPath      *string
	CheckpointPath *string
	SavedModelPath *string
}

// Token returns the literal placeholder for a keyword, e.g. %INPUT_PATH%.
func Token(keyword string) string {
	return "%" + keyword + "%"
}

// Placeholders returns every placeholder token in a fixed order.
func Placeholders() []string {
	return []string{Token(InputPath), Token(CheckpointPath), Token(SavedModelPath)}
}

// substitutions pairs each set field with its token.
func (p Params) substitutions() [][2]string {
	var subs [][2]string
	if p.CheckpointPath != nil {
		subs = append(subs, [2]string{Token(CheckpointPath), *p.CheckpointPath})
	}
	if p.InputPath != nil {
		subs = append(subs, [2]string{Token(InputPath), *p.InputPath})
	}
	if p.SavedModelPath != nil {
		subs = append(subs, [2]string{Token(SavedModelPath), *p.SavedModelPath})
	}
	return subs
}

// Resolve replaces every occurrence of each placeholder whose parameter is set.
// It never fails; placeholders without a value are kept verbatim.
func Resolve(command string, p Params) string {
	for _, sub := range p.substitutions() {
		command = strings.ReplaceAll(command, sub[0], sub[1])
	}
	return command
}

// Unresolved lists the known placeholders still present in command.
func Unresolved(command string) []string {
	var left []string
	for _, token := range Placeholders() {
		if strings.Contains(command, token) {
			left = append(left, token)
		}
	}
	return left
}
