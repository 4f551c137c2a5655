package market

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"farmmate/entities"
)

const maxFetchBytes = 1 << 20

// FetchURL scrapes a price table from an HTML page (first column crop name,
// second price, optional third percent change) and replaces the board when
// at least one row parses. Any failure leaves the current board as is.
func (b *Board) FetchURL(u string) error {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil { return err }
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: status %d", u, resp.StatusCode)
	}
	if resp.ContentLength > 0 && resp.ContentLength > maxFetchBytes {
		return errors.New("page too large")
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return fmt.Errorf("unsupported content-type: %s", ct)
	}
	limited := io.LimitedReader{R: resp.Body, N: maxFetchBytes}
	body, err := io.ReadAll(&limited)
	if err != nil { return err }

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil { return err }

	var out []entities.MarketPrice
	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 { return }
		name := strings.ToLower(strings.TrimSpace(cells.Eq(0).Text()))
		price, err := parseNumber(cells.Eq(1).Text())
		if name == "" || err != nil { return }
		var change float64
		if cells.Length() > 2 {
			change, _ = parseNumber(cells.Eq(2).Text())
		}
		out = append(out, entities.MarketPrice{NameKey: name, Price: price, Change: change, Unit: defaultUnit})
	})
	if len(out) == 0 {
		return errors.New("no price rows found at " + u)
	}
	b.set(out)
	return nil
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "%₹$ ")
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}
