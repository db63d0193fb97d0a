package reconcile

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/bolao/internal/money"
)

const (
	fallbackConfidence = 0.5
	fallbackNote       = "Análise básica (sem IA)"

	minColumns   = 3
	sniffLines   = 5
	brDateLayout = "02/01/2006"
)

var (
	// amountPattern only accepts cells that clearly hold money: an "R$" prefix,
	// a comma decimal part or a dot decimal part, optionally wrapped in
	// parentheses or followed by a D/C marker. Dates and document numbers
	// never match.
	amountPattern  = regexp.MustCompile(`^\(?-?\s*(?:R\$\s*\(?-?\s*\d[\d.,]*|\d[\d.]*,\d{1,2}|\d+\.\d{1,2})\)?(?:\s*[DCdc])?$`)
	// integerPattern is tried only when no cell looks like money, e.g. "30"
	// or the integer half of an unquoted "30,00" split by a comma delimiter.
	integerPattern = regexp.MustCompile(`^\d{1,6}$`)
	datePattern    = regexp.MustCompile(`\d{2}/\d{2}/\d{4}|\d{4}-\d{2}-\d{2}`)
	payerPattern   = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(?:de|from|pagador)(?:[^\p{L}]|$):?\s*([\p{L}][\p{L} ]*)`)

	errTooFewColumns = errors.New("too few columns")
	errNoAmount      = errors.New("no amount")
	errNotDeposit    = errors.New("not a deposit")
)

// Fallback classifies statement rows with local first-match rules. It is
// used when no model is configured or the model output cannot be trusted.
type Fallback struct {
	now func() time.Time
}

func NewFallback(now func() time.Time) *Fallback {
	return &Fallback{now: now}
}

func (f *Fallback) Analyze(_ context.Context, in Input) ([]Transaction, error) {
	r := csv.NewReader(strings.NewReader(in.CSV))
	r.Comma = detectDelimiter(in.CSV)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var (
		txs     []Transaction
		skipped int
	)

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			continue
		}

		if err != nil {
			break
		}

		tx, err := f.parseRow(record, in.Participants)
		if errors.Is(err, errNoAmount) {
			line, _ := r.FieldPos(0)
			slog.Debug("skipping statement row without amount", "line", line)

			skipped++

			continue
		}

		if err != nil {
			continue
		}

		txs = append(txs, tx)
	}

	if skipped > 0 {
		slog.Info("fallback skipped statement rows without amount", "rows", skipped, "deposits", len(txs))
	}

	return txs, nil
}

func (f *Fallback) parseRow(record []string, roster []Participant) (Transaction, error) {
	if len(record) < minColumns {
		return Transaction{}, errTooFewColumns
	}

	cols := make([]string, len(record))
	for i, c := range record {
		cols[i] = strings.TrimSpace(strings.ReplaceAll(c, `"`, ""))
	}

	amount, found := firstAmount(cols)
	if !found {
		return Transaction{}, errNoAmount
	}

	if amount <= 0 {
		return Transaction{}, errNotDeposit
	}

	date, found := firstDate(cols)
	if !found {
		now := f.now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	desc := description(cols)
	payer := payerName(desc)

	tx := Transaction{
		Date:        date,
		Amount:      amount,
		Description: desc,
		PayerName:   payer,
		Type:        TypeOther,
		Status:      StatusPending,
		Confidence:  fallbackConfidence,
		Note:        fallbackNote,
	}

	if strings.Contains(strings.ToLower(desc), "pix") {
		tx.Type = TypePixIn
	}

	if p := matchParticipant(payer, roster); p != nil {
		tx.SuggestedEmail = new(p.Email)
	} else {
		tx.Status = StatusUserNotFound
		tx.RejectionReason = new(payerNotFound(payer))
	}

	return tx, nil
}

// detectDelimiter picks ';' or ',' by counting unquoted occurrences in the
// first non-empty lines.
func detectDelimiter(content string) rune {
	var semicolons, commas, lines int

	for line := range strings.Lines(content) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		quoted := false

		for _, r := range line {
			switch {
			case r == '"':
				quoted = !quoted
			case quoted:
			case r == ';':
				semicolons++
			case r == ',':
				commas++
			}
		}

		lines++
		if lines == sniffLines {
			break
		}
	}

	if semicolons > 0 && semicolons >= commas {
		return ';'
	}

	return ','
}

func firstAmount(cols []string) (int64, bool) {
	if cents, ok := firstMatching(cols, amountPattern); ok {
		return cents, true
	}

	return firstMatching(cols, integerPattern)
}

func firstMatching(cols []string, pattern *regexp.Regexp) (int64, bool) {
	for _, c := range cols {
		if !pattern.MatchString(c) {
			continue
		}

		cents, err := money.ParseBRL(c)
		if err != nil {
			continue
		}

		return cents, true
	}

	return 0, false
}

func firstDate(cols []string) (time.Time, bool) {
	for _, c := range cols {
		m := datePattern.FindString(c)
		if m == "" {
			continue
		}

		layout := time.DateOnly
		if strings.Contains(m, "/") {
			layout = brDateLayout
		}

		if d, err := time.Parse(layout, m); err == nil {
			return d, true
		}
	}

	return time.Time{}, false
}

func description(cols []string) string {
	for _, c := range cols {
		l := strings.ToLower(c)
		if strings.Contains(l, "pix") || strings.Contains(l, "transf") {
			return c
		}
	}

	return cols[1]
}

func payerName(desc string) string {
	m := payerPattern.FindStringSubmatch(desc)
	if m == nil {
		return UnknownPayer
	}

	name := strings.TrimSpace(m[1])
	if name == "" {
		return UnknownPayer
	}

	return name
}
