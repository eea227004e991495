// Package csvin reads Excel-dialect CSV exports as a lazy sequence of
// positional records.
//
// Framing is comma separated with double-quote escaping; CRLF and LF line
// endings are both accepted and rows may have any number of columns. A
// leading byte order mark is dropped. Windows-1251 exports are decoded to
// UTF-8 before parsing.
package csvin
