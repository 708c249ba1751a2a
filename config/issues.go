package config

import "github.com/lyraproj/issue/issue"

const (
	ConfigParseFailed = `SW_CONFIG_PARSE_FAILED`
	ConfigReadFailed  = `SW_CONFIG_READ_FAILED`
	IllegalLogLevel   = `SW_ILLEGAL_LOG_LEVEL`
)

func init() {
	issue.Hard(ConfigParseFailed, `Unable to parse configuration file '%{path}': %{detail}`)

	issue.Hard(ConfigReadFailed, `Unable to read configuration file '%{path}': %{detail}`)

	issue.Hard(IllegalLogLevel, `Configuration file '%{path}' has an illegal log_level '%{level}'`)
}
