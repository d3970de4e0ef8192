// Package pipeline implements the notebook and report to HTML fragment pipeline.
//
// This package handles every transformation stage between raw source text and
// the page fragment handed back to the caller:
//   - Inline formatting (code spans, bold, italic, links)
//   - Block parsing of a markdown subset, driven by a Dialect
//   - List building with one level of nesting
//   - Notebook output rendering (stream, images, HTML, text, errors)
//   - Report splitting by numbered top-level headings
//   - Page assembly from html/template page templates
//
// Reading files, discovering directories and writing results is left to the
// caller. Every function in this package is a pure function of its input, so
// documents can be converted independently of each other.
package pipeline
