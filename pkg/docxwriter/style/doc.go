// Package style serializes model styles into WordprocessingML property
// fragments (w:pPr, w:rPr, w:tblPr, w:trPr, w:tcPr, w:sectPr).
//
// Writers are small value types configured through their fields and emitting
// into an active xml.Writer. They write nothing for a nil style.
package style
