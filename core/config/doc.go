// Package config provides configuration management for the stock report service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, optional API key, upload size limit, session cookie
//   - Storage: upload archive driver (local directory or S3/MinIO bucket)
//   - Log: Logging level and format
//   - Reconcile: purchase join scope and session idle timeout
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port, cfg.Reconcile.JoinScope)
package config
