package rows

// TitleCell builds a title cell from fragments.
func TitleCell(fragments ...Fragment) Cell {
	return Cell{Type: CellTitle, Text: fragments}
}

// RichTextCell builds a rich_text cell from fragments.
func RichTextCell(fragments ...Fragment) Cell {
	return Cell{Type: CellRichText, Text: fragments}
}

// URLCell builds a url cell. An empty value yields an absent payload.
func URLCell(value string) Cell {
	return Cell{Type: CellURL, Scalar: optionalString(value)}
}

// EmailCell builds an email cell.
func EmailCell(value string) Cell {
	return Cell{Type: CellEmail, Scalar: optionalString(value)}
}

// PhoneCell builds a phone_number cell.
func PhoneCell(value string) Cell {
	return Cell{Type: CellPhone, Scalar: optionalString(value)}
}

// NumberCell builds a number cell carrying a present value, including zero.
func NumberCell(value float64) Cell {
	v := value
	return Cell{Type: CellNumber, Number: &v}
}

// EmptyCell builds a cell of the given type with no payload.
func EmptyCell(t CellType) Cell {
	return Cell{Type: t}
}

// SelectCell builds a select cell.
func SelectCell(name string) Cell {
	return Cell{Type: CellSelect, Select: &Option{Name: name}}
}

// MultiSelectCell builds a multi_select cell.
func MultiSelectCell(names ...string) Cell {
	options := make([]Option, 0, len(names))
	for _, name := range names {
		options = append(options, Option{Name: name})
	}
	return Cell{Type: CellMultiSelect, MultiSelect: options}
}

// DateCell builds a date cell with a start date.
func DateCell(start string) Cell {
	return Cell{Type: CellDate, Date: &DateRange{Start: start}}
}

// FilesCell builds a files cell.
func FilesCell(files ...File) Cell {
	return Cell{Type: CellFiles, Files: files}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	v := value
	return &v
}
