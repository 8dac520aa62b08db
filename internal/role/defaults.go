package role

import "fmt"

// Built-in role names.
const (
	DefaultName       = "ShellGPT"
	ShellName         = "Shell Command Generator"
	DescribeShellName = "Shell Command Descriptor"
	CodeName          = "Code Generator"
)

// Built-in role descriptions. {os} and {shell} placeholders are filled
// from the host descriptors at bootstrap time.
//
// Output for roles containing "APPLY MARKDOWN" is formatted as Markdown
// by downstream consumers.
const (
	defaultDescription = `You are programming and system administration assistant.
You are managing {os} operating system with {shell} shell.
Provide short responses in about 100 words, unless you are specifically asked for more details.
If you need to store any data, assume it will be stored in the conversation.
APPLY MARKDOWN formatting when possible.`

	shellDescription = `Provide only {shell} commands for {os} without any description.
If there is a lack of details, provide most logical solution.
Ensure the output is a valid shell command.
If multiple steps required try to combine them together using &&.
Provide only plain text without Markdown formatting.
Do not provide markdown formatting such as ` + "```" + `.
`

	describeShellDescription = `Provide a terse, single sentence description of the given shell command.
Describe each argument and option of the command.
Provide short responses in about 80 words.
APPLY MARKDOWN formatting when possible.`

	codeDescription = `Provide only code as output without any description.
Provide only code in plain text format without Markdown formatting.
Do not include symbols such as ` + "```" + ` or ` + "```" + `python.
If there is a lack of details, provide most logical solution.
You are not allowed to ask for more details.
For example if the prompt is "Hello world Python", you should return "print('Hello world')".`
)

// DefaultKind selects one of the built-in roles.
type DefaultKind int

const (
	KindDefault DefaultKind = iota
	KindShell
	KindDescribeShell
	KindCode
)

// Name returns the built-in role name for the kind.
func (k DefaultKind) Name() string {
	switch k {
	case KindShell:
		return ShellName
	case KindDescribeShell:
		return DescribeShellName
	case KindCode:
		return CodeName
	default:
		return DefaultName
	}
}

// PickDefault maps mode flags to a built-in role kind. Priority:
// shell > describe-shell > code > default.
func PickDefault(shell, describeShell, code bool) DefaultKind {
	switch {
	case shell:
		return KindShell
	case describeShell:
		return KindDescribeShell
	case code:
		return KindCode
	default:
		return KindDefault
	}
}

// defaultTemplate pairs a built-in role with its description and
// whether the {os}/{shell} variables apply.
type defaultTemplate struct {
	name        string
	description string
	vars        bool
}

var defaultTemplates = []defaultTemplate{
	{DefaultName, defaultDescription, true},
	{ShellName, shellDescription, true},
	{DescribeShellName, describeShellDescription, true},
	{CodeName, codeDescription, false},
}

// Bootstrap seeds the built-in roles, substituting the supplied host
// descriptors into their templates. Idempotent: a role already on disk
// is never rewritten. Returns the names that were actually seeded.
func Bootstrap(store *Store, osDescriptor, shellDescriptor string) ([]string, error) {
	vars := Vars{"os": osDescriptor, "shell": shellDescriptor}

	var seeded []string
	for _, tpl := range defaultTemplates {
		if store.Exists(tpl.name) {
			continue
		}

		v := Vars(nil)
		if tpl.vars {
			v = vars
		}
		rec, err := New(tpl.name, tpl.description, v, false)
		if err != nil {
			return seeded, fmt.Errorf("render default role %q: %w", tpl.name, err)
		}
		if err := store.Save(rec); err != nil {
			return seeded, fmt.Errorf("seed default role %q: %w", tpl.name, err)
		}
		seeded = append(seeded, tpl.name)
	}
	return seeded, nil
}
