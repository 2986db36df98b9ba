// Package config manages the Heat CLI configuration.
//
// The configuration is a TOML file, by default located at "~/.heat/heat.toml".
// Some of its keys can be overridden through environment variables, this is
// useful in scripts or when switching between projects in a shell session.
package config
