// Package config loads the runtime settings of the releasecfg tool itself
// (not the release configuration it checks) from YAML files, RELEASECFG_*
// environment variables and CLI flags, with precedence: CLI flags > YAML
// config > Environment variables > Defaults.
package config
