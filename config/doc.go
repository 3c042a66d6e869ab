// Package config loads declarative client configuration from YAML files and
// environment variables and lowers it into a fetch.Configuration.
//
// A config.yml describing a client:
//
//	base_url: https://api.example.com
//	standard: true
//	headers:
//	  Accept: application/json
//	request_id:
//	  enabled: true
//
// loads and builds as:
//
//	f, err := config.Load("myservice")
//	if err != nil { ... }
//	client := fetch.NewClient(f.Build())
//
// Environment variables prefixed with the upper-cased service name override
// file values (MYSERVICE_BASE_URL, MYSERVICE_STANDARD, ...), with an optional
// .env file loaded first.
package config
