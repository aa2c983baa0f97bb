package clean

import (
	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
)

// MarkDataTables tags every <table> under root with
// data-readability-table-type="data" or "presentation", so later
// conditional cleaning can skip genuine data tables. Grounded on the
// teacher's markDataTables (cleanup.go), simplified to the core per-table
// heuristics (role=presentation, explicit ARIA/legacy attributes, caption/
// th/colgroup/summary presence, row/column/area thresholds) without the
// nested nesting-level nuance the teacher added on top.
func MarkDataTables(root *html.Node) {
	for _, table := range dom.FindAll(root, "table") {
		if dom.Attr(table, "role") == "presentation" {
			dom.SetAttr(table, "data-readability-table-type", "presentation")
			continue
		}
		if dom.Attr(table, "datatable") == "0" {
			dom.SetAttr(table, "data-readability-table-type", "presentation")
			continue
		}
		if dom.HasAttr(table, "summary") {
			dom.SetAttr(table, "data-readability-table-type", "data")
			continue
		}
		if len(dom.FindAll(table, "caption", "th", "colgroup")) > 0 {
			dom.SetAttr(table, "data-readability-table-type", "data")
			continue
		}
		if hasDescendantTable(table) {
			dom.SetAttr(table, "data-readability-table-type", "presentation")
			continue
		}

		rows := len(dom.FindAll(table, "tr"))
		cols := maxColumns(table)
		if rows >= 10 || cols >= 4 {
			dom.SetAttr(table, "data-readability-table-type", "data")
			continue
		}
		if rows*cols > 10 {
			dom.SetAttr(table, "data-readability-table-type", "data")
			continue
		}
		dom.SetAttr(table, "data-readability-table-type", "presentation")
	}
}

func hasDescendantTable(table *html.Node) bool {
	for _, t := range dom.FindAll(table, "table") {
		if t != table {
			return true
		}
	}
	return false
}

func maxColumns(table *html.Node) int {
	max := 0
	for _, row := range dom.FindAll(table, "tr") {
		n := len(dom.Children(row))
		if n > max {
			max = n
		}
	}
	return max
}
