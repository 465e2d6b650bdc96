// Package config loads cardsearch settings from a TOML file.
//
// The default location is ~/.config/cardsearch/config.toml. A missing file is
// not an error: every field has a default.
//
//	source_url = "https://example.com/users.json"  # or a local path
//	request_timeout = "10s"
//	log_file = "~/.local/state/cardsearch/cardsearch.log"
//	log_level = "info"                             # debug, info, warn, error
//
// Values are trimmed; blank values fall back to defaults. Paths starting with
// "~" are expanded against the user's home directory. Parse errors, including
// an unparseable request_timeout, are returned to the caller.
package config
