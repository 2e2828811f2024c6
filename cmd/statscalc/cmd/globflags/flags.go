package globflags

var (
	ConfigPath string
)
