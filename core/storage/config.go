package storage

// Drivers supported by NewArchive.
const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config holds configuration for the upload archive.
type Config struct {
	// Driver selects where uploads are archived (local, s3).
	Driver string `mapstructure:"driver" default:"local"`
	// LocalDir is the directory used by the local driver.
	LocalDir string `mapstructure:"local_dir" default:"uploads"`
	// Prefix is the object key prefix used by the s3 driver.
	Prefix string `mapstructure:"prefix" default:"uploads/"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to archive uploads in.
	Bucket string `mapstructure:"bucket" default:"giga-uploads"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
