package stockplan

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stockplan/date"
)

// ImportPrices extracts stock prices from any JSON document, like the price
// history exported by a broker or a market data website.
//
// itemsPath selects the list of price points (e.g. "$.prices[*]"), datePath
// and pricePath are evaluated on each of them (e.g. "$.date" and "$.close").
// Prices may be JSON numbers or strings, using either '.' or ',' as the
// decimal separator.
func ImportPrices(r io.Reader, itemsPath, datePath, pricePath string) ([]StockPrice, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("not a correct json: %w", err)
	}
	jitems, err := jsonpath.Get(itemsPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", itemsPath, err)
	}
	items, ok := jitems.([]any)
	if !ok {
		items = []any{jitems}
	}

	prices := make([]StockPrice, 0, len(items))
	for i, item := range items {
		jdate, err := first(jsonpath.Get(datePath, item))
		if err != nil {
			return nil, fmt.Errorf("item %d: error evaluating %q: %w", i, datePath, err)
		}
		sdate, ok := jdate.(string)
		if !ok {
			return nil, fmt.Errorf("item %d: %q is not a string: %v", i, datePath, jdate)
		}
		on, err := date.Parse(sdate)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		jprice, err := first(jsonpath.Get(pricePath, item))
		if err != nil {
			return nil, fmt.Errorf("item %d: error evaluating %q: %w", i, pricePath, err)
		}
		price, err := parsePrice(jprice)
		if err != nil {
			return nil, fmt.Errorf("item %d: %q: %w", i, pricePath, err)
		}
		prices = append(prices, StockPrice{Date: on, PricePerShare: M(price, "")})
	}
	return prices, nil
}

// first unwraps single element lists: jsonpath is never clear about whether
// it returns a list of one answer or the answer itself.
func first(v any, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil, fmt.Errorf("no value")
		}
		return list[0], nil
	}
	return v, nil
}

func parsePrice(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(x), " ", "")
		s = strings.ReplaceAll(s, ",", ".")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price %q: %w", x, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}
