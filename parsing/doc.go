// Package parsing decodes minutiae from the file formats the legacy
// matcher's tooling consumed: whitespace-separated ".xyt" text, its
// colon-delimited ".min" sidecar (minutia kind only), the two combined, and
// the binary ISO/IEC 19794-2 finger minutiae record format.
package parsing
