// Package config loads solver configuration from flags, environment
// variables and an optional config file, using viper to merge the
// sources and mapstructure to decode the result into a typed struct.
package config
