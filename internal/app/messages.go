package app

// ConfigChangedMsg is sent when the config file changes on disk
type ConfigChangedMsg struct{}
