// Package media implements the encoding utilities the output components
// depend on: a raw pixel Array type, base64 encode/decode for arrays, files,
// plots and fetched URLs, and WAV writing for audio buffers.
//
// Encoded payloads are data-URI style strings: a "data:<mime>;base64,"
// prefix identifying the content type followed by the base64 payload.
// Callers that need raw base64 (the File component) opt out of the header.
//
// I/O failures (missing files, unreachable URLs, undecodable payloads)
// propagate to callers unmodified; this layer never retries.
package media
