package cli

// Command descriptions
const (
	MsgRootUse   = "rename-files [flags] <matching> <replace> <file>..."
	MsgRootShort = "Rename files according to a regex"
	MsgRootLong  = `rename-files renames each <file> by replacing the first match of the
regular expression <matching> in its path with <replace>.

<replace> may refer to capture groups as $1, ${1} or ${name}; a reference to
a group that does not exist expands to nothing, and $$ is a literal dollar.

Files are renamed one at a time, in the order given. A rename never
overwrites an existing file: if the new name is taken, or the rename fails
for any other reason, rename-files reports it and stops without touching
the remaining files. Files whose name does not change are left alone.

Flags must come before <matching>. Use -- if the pattern starts with a dash.`
	MsgRootExample = `  # foo.txt -> bar.txt
  rename-files foo bar foo.txt

  # img42.png -> imgN42.png
  rename-files '(\d+)' 'N$1' img42.png

  # notes.txt -> notes_old.txt (braces separate the group from following text)
  rename-files '^(\w+)\.txt$' '${1}_old.txt' notes.txt`
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor   = "Style diagnostics: auto, always or never"
)

// Error messages
const (
	MsgErrMatchRequired   = "matching must be specified"
	MsgErrReplaceRequired = "replace must be specified"
	MsgErrFilesRequired   = "at least one file must be specified"
	MsgErrorPrefix        = "Error: %v\n"
)

// Templates
const (
	MsgVersionTemplate = `{{.Name}} version {{.Version}}
`

	MsgUsageTemplate = `{{boldUpper "usage"}}:
  {{.UseLine}}{{if .HasExample}}

{{boldUpper "examples"}}:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`
)
