// Package imaging handles the file boundary of the server: mapping file
// extensions to MIME types, reading input images for edit calls, and
// persisting generated images to disk.
//
// No pixel-level processing happens here. Input images are passed to
// the API as opaque bytes, and generated images are written back out
// exactly as received. The only decoding this package does is a
// best-effort dimension probe after a save, so the save report can
// mention the image size; a payload the process cannot decode is still
// written in full.
//
// # MIME Types
//
// MIME types are inferred from file extensions (case-insensitive):
//   - ".png" -> "image/png"
//   - ".jpg", ".jpeg" -> "image/jpeg"
//   - ".webp" -> "image/webp"
//   - ".gif" -> "image/gif"
//   - anything else -> "image/png"
//
// # Concurrency
//
// All functions are stateless and safe for concurrent use. Parent
// directory creation on save is idempotent, so two calls saving into
// the same new directory cannot trip over each other.
package imaging
