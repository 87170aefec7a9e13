// Package schema is the Template Registry. It parses the external descriptor
// document (sidebar.statsUrl plus the "templates" entry of sidebar.menu),
// resolves declared option defaults, and loads descriptor documents from
// files, fs.FS values, or HTTP endpoints.
package schema
