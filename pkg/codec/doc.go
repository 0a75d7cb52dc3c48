// Package codec provides format-agnostic serialization utilities.
//
// It supports JSON, YAML, and TOML through the [ContentType] enum. Use
// [Encode] and [Decode] for byte slice operations, or [EncodeFile] and
// [DecodeFile] for file I/O with automatic format detection from file
// extensions. This is the backbone of the on-disk configuration override
// file accepted by the ontology proxy's CLI.
//
// The key parameter in encode/decode functions specifies which struct tag to
// use for field mapping (e.g., "field", "json", "yaml"). This allows a single
// struct to support multiple serialization strategies.
//
// Supported file extensions:
//   - JSON: .json
//   - YAML: .yaml, .yml
//   - TOML: .toml
//
// Example:
//
//	type Config struct {
//	    Port int `field:"port"`
//	}
//
//	cfg := Config{Port: 3000}
//
//	// Encode to bytes
//	data, err := codec.Encode(codec.ContentTypeJSON, "field", cfg)
//
//	// Decode from bytes
//	var decoded Config
//	err = codec.Decode(codec.ContentTypeJSON, "field", &decoded, data)
//
//	// File operations with automatic format detection
//	err = codec.EncodeFile("config.yaml", "field", cfg)
//	ct, err := codec.DecodeFile("config.yaml", "field", &decoded)
//
// The package defines sentinel errors for common failure modes:
//   - [ErrInvalidContentType]: Invalid MIME type string
//   - [ErrUnsupportedContentType]: Content type not supported
//   - [ErrEncodingFailed]: Serialization failure
//   - [ErrDecodingFailed]: Deserialization failure
//
// These errors are wrapped with additional context using the crex package
// error conventions.
package codec
