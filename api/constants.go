package api

const (
	// DefaultFilePermissions for temp directory creation
	DefaultFilePermissions = 0755

	// Filenames suggested to the browser for the download
	MergedFilename           = "merged.pdf"
	MergedCompressedFilename = "merged_compressed.pdf"

	// Informational response headers reporting what the pipeline did
	HeaderCompressionMethod = "X-Compression-Method"
	HeaderCompressionLevel  = "X-Compression-Level"
)
