// Package gemini talks to the Gemini generateContent REST API for image
// generation and editing.
//
// The package is organized as a small pipeline:
//
//  1. NewRequest builds the JSON request body from a prompt and an
//     optional input image.
//  2. Client.GenerateContent performs the single HTTP round trip. It
//     never retries; a non-2xx reply becomes an *APIError and transport
//     failures are returned untouched.
//  3. Extract walks the first candidate's content parts, pulling out
//     the text and inline image data, and decides success or failure.
//  4. ClassifyError converts any failure from the steps above into a
//     single human-readable message.
//
// Every call is independent: the package holds no cache, no
// conversation state, and nothing shared between invocations beyond
// the immutable Client configuration.
//
// # Wire Format
//
// Requests and responses use the v1beta generateContent shapes:
// contents holding role-tagged parts, parts holding either text or
// base64 inlineData, and responses holding candidates with a
// finishReason. Both TEXT and IMAGE response modalities are requested
// on every call.
//
// # Authentication
//
// The API key is passed as the "key" query parameter, matching the
// public Gemini REST convention. The key is validated for presence when
// the Client is constructed, not per call.
package gemini
