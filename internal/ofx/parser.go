// Package ofx converts OFX/QFX bank statements into expense transactions so
// downloaded statements can be pulled into the tracker and auto-categorized.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"finote/internal/model"
)

// Parser reads OFX/QFX statement files.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// descriptionPrefixes are bank-added noise stripped from statement names.
var descriptionPrefixes = []string{
	"POS PURCHASE ",
	"PURCHASE AUTHORIZED ON ",
	"DEBIT CARD PURCHASE ",
	"ACH DEBIT ",
	"CHECK CARD ",
	"VISA PURCHASE ",
	"MC PURCHASE ",
	"DEBIT PURCHASE ",
}

var severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
var tagFixRegex = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)

// preprocess fixes common formatting issues in SGML-style OFX files: leading
// whitespace, mixed-case SEVERITY values, and missing closing brackets.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX/QFX statement and returns the debits as expense
// transactions. Credits (deposits) are skipped; the income ledger is managed
// by hand. Returned transactions carry no category so the classifier can
// assign one.
func (p *Parser) ParseFile(reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var skippedCredits int

	collect := func(list *ofxgo.TransactionList) {
		if list == nil {
			return
		}
		for _, ofxTx := range list.Transactions {
			txn, ok := p.convert(ofxTx)
			if !ok {
				skippedCredits++
				continue
			}
			transactions = append(transactions, txn)
		}
	}

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			collect(stmt.BankTranList)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			collect(stmt.BankTranList)
		}
	}

	slog.Info("parsed OFX file",
		"expenses", len(transactions),
		"skipped_credits", skippedCredits)

	return transactions, nil
}

// convert maps one OFX transaction onto the expense model. It reports false
// for credits.
func (p *Parser) convert(ofxTx ofxgo.Transaction) (model.Transaction, bool) {
	amount, _ := ofxTx.TrnAmt.Float64()
	// OFX uses negative amounts for debits.
	if amount >= 0 {
		return model.Transaction{}, false
	}

	return model.Transaction{
		ID:            string(ofxTx.FiTID),
		Type:          model.TypeExpense,
		Amount:        model.RoundAmount(-amount),
		Description:   p.describe(ofxTx),
		Date:          ofxTx.DtPosted.Time,
		PaymentMethod: model.PaymentDigital,
	}, true
}

// describe picks the cleanest available description for a statement line.
func (p *Parser) describe(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if name == "" && tx.Memo != "" {
		name = strings.TrimSpace(string(tx.Memo))
	}

	upper := strings.ToUpper(name)
	for _, prefix := range descriptionPrefixes {
		if strings.HasPrefix(upper, prefix) {
			name = strings.TrimSpace(name[len(prefix):])
			break
		}
	}
	return name
}
