// Package exporter writes the arbitrage report tables: CSV files with a
// UTF-8 BOM for Excel compatibility, formatted-in-millions variants, and a
// consolidated Excel workbook with one sheet per panel.
package exporter
