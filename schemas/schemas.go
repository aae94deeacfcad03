// Package schemas embeds the JSON Schemas that guard stored and posted documents.
package schemas

import _ "embed"

// ReportDocument is the schema for the content column of a report.
//
//go:embed report_document.schema.json
var ReportDocument []byte

// ReportRequest is the schema for a report request body on the JSON API.
//
//go:embed report_request.schema.json
var ReportRequest []byte
