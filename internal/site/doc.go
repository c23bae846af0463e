// Package site holds the SiteConfiguration record handed to the Docusaurus
// builder and the assembler that produces it.
//
// A SiteConfiguration is built once per process by Assemble, which reads the
// clock exactly once to freeze the footer copyright year. Nothing mutates the
// value afterwards; encoders in internal/render and checks in
// internal/refcheck and internal/linkcheck only read it.
package site
