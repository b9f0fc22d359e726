package models

// BlockType tags the variant of a ContentBlock.
type BlockType string

const (
	BlockParagraph BlockType = "paragraph"
	BlockTable     BlockType = "table"
)

// Named table data sources resolved against the statement record.
const (
	SourceTransactions    = "transactions"
	SourceDeposits        = "deposits"
	SourceWithdrawals     = "withdrawals"
	SourceDailyBalances   = "daily_balances"
	SourceAccountSummary  = "account_summary"
	SourceActivitySummary = "transaction_and_interest_summary"
)

// ContentBlock is one renderable unit inside a section: either a paragraph
// (template text, optionally wrapped) or a rectangular table fed by literal
// rows or by a named data source.
type ContentBlock struct {
	Type BlockType `json:"type"`

	// Paragraph fields
	Text string `json:"text,omitempty"`
	Wrap bool   `json:"wrap,omitempty"`

	// Table fields
	Data      [][]string `json:"data,omitempty"`
	DataKey   string     `json:"data_key,omitempty"`
	Headers   []string   `json:"headers,omitempty"`
	ColWidths []float64  `json:"col_widths,omitempty"` // proportions of the region width
	// RightAlign lists the zero-based column indexes rendered right-aligned
	// (amount and balance columns).
	RightAlign []int `json:"right_align,omitempty"`
	// OpeningRow prepends an "Opening balance" row to a running ledger.
	OpeningRow bool `json:"opening_row,omitempty"`
	// Totals appends a bold totals row derived from the summary.
	Totals bool `json:"totals,omitempty"`
	// Boxed draws the table inside a shaded box (account summary style).
	Boxed bool `json:"boxed,omitempty"`
	// TruncateAt is the description character budget; longer cells are cut
	// with an ellipsis. Zero means the default budget.
	TruncateAt int `json:"truncate_at,omitempty"`
}

// Section is a named, orderable group of content blocks.
type Section struct {
	Title  string         `json:"title"`
	Blocks []ContentBlock `json:"blocks"`
}

// Paragraph builds a wrapped paragraph block.
func Paragraph(text string) ContentBlock {
	return ContentBlock{Type: BlockParagraph, Text: text, Wrap: true}
}

// SourceTable builds a table block backed by a named data source.
func SourceTable(key string, headers []string, widths []float64, rightAlign ...int) ContentBlock {
	return ContentBlock{
		Type:       BlockTable,
		DataKey:    key,
		Headers:    headers,
		ColWidths:  widths,
		RightAlign: rightAlign,
	}
}
