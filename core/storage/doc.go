// Package storage archives uploaded spreadsheets.
//
// Every file received by the upload endpoint is copied to an Archive, keyed by
// its original file name (last write wins). Two drivers are available:
//
//   - local: files are written to a directory on disk (default "uploads").
//     The directory is never cleaned up.
//   - s3: files are put into an S3/MinIO bucket through the minio-go client,
//     under a configurable key prefix.
//
// # Client Interface
//
// The Client interface abstracts the MinIO client, making it easy to mock
// storage interactions in unit tests (see core/storage/mocks).
//
// # Usage
//
//	archive, err := storage.NewArchive(cfg.Storage)
//	location, err := archive.Save(ctx, file.Filename, reader, file.Size)
package storage
