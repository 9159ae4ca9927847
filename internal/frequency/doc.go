// Package frequency counts line-delimited item names case-insensitively.
//
// A Table is built once from a finite sequence of lines and is read-only
// afterwards, so a single *Table can be shared between any number of readers
// without synchronization. Reading the source file and writing the backup
// file are kept apart from building the table: see ReadFile and Persist.
package frequency
