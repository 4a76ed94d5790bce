// Package dataprocessing turns raw attendance punches into a validated
// timesheet and monthly compliance summary. It consolidates field parsing,
// row derivation, aggregation and insight ranking into a cohesive package
// covering the complete lifecycle from tabular ingestion to ranked views.
//
// # Architecture
//
// The package is organized into four main components:
//
// 1. Parsers: normalize free-form text fields into typed values or nil
// 2. Deriver: computes worked hours and compliance flags for one record
// 3. Summarizer: groups daily results per employee into monthly totals
// 4. Ranker: sorts the summary by each compliance metric, keeping the top N
//
// # Data Flow
//
// The typical data flow through this package:
//
//	CSV/XLSX file → LoadRecords → AttendanceRecords → BuildTimesheet →
//	DailyResults → Summarizer → EmployeeSummaries → RankInsights → Insights
//
// # Error Handling
//
// Field-level parse failures never abort a run: the parsers are total and
// degrade bad input to nil or a policy default, which the derivation rules
// handle explicitly (missing punch, absence). Only structural problems such
// as a missing required column or an unreadable file return an error.
package dataprocessing
