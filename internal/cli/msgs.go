package cli

// Short messages (one-liners)
const (
	MsgRootShort = "Link your dotfiles into your home directory"
	MsgRootLong  = `dotupdate links every top-level entry of a dotfiles directory into a
destination directory as a dot-prefixed symbolic link:

  ./dotfiles/bashrc  ->  ~/.bashrc
  ./dotfiles/vim     ->  ~/.vim

Existing files and links are never replaced. Options are read from
config.ini ([general] section) in the current directory or in
$XDG_CONFIG_HOME/dotupdate/, and any flag given on the command line wins.`

	MsgVersionShort   = "Print version information"
	MsgGenConfigShort = "Print a sample config.ini"

	// Flag help
	MsgFlagSource  = "Source directory containing your dotfiles to link to (default ./dotfiles)"
	MsgFlagDest    = "Where to link your dotfiles. The default is usually what you want (default ~/)"
	MsgFlagBackup  = "Perform a backup of files that already exist (not implemented)"
	MsgFlagTest    = "Do a dry run printing what would have taken place"
	MsgFlagIgnore  = "Comma separated top-level entries to skip"
	MsgFlagFilter  = "Glob selecting top-level entries of the source (default *)"
	MsgFlagConfig  = "Config file to read (default ./config.ini or $XDG_CONFIG_HOME/dotupdate/config.ini)"
	MsgFlagDebug   = "Enable debug output level"
	MsgFlagVerbose = "Increase verbosity (-v DEBUG, -vv TRACE)"

	// Version output
	MsgVersionFormat = "dotupdate version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
)
