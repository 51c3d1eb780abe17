package lark

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/larkbridge-io/options-api/internal/constant"
)

// ListRecords reads a single page of records for one field of a table.
// A parsed reply without a success code or without an item collection
// yields an empty slice, not an error; the caller still produces a
// well-formed, empty options list.
func (c *Client) ListRecords(ctx context.Context, appToken, tableID, fieldName string) ([]Record, error) {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	fieldNames, err := json.Marshal([]string{fieldName})
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("encoding field_names: %w", err)}
	}

	endpoint := c.baseURL + fmt.Sprintf(constant.RecordsEndpointPath, url.PathEscape(appToken), url.PathEscape(tableID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("building records request: %w", err)}
	}

	query := req.URL.Query()
	query.Set("page_size", strconv.Itoa(constant.RecordPageSize))
	query.Set("field_names", string(fieldNames))
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("calling records endpoint: %w", err)}
	}
	defer resp.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	decoder.UseNumber() // numeric field values keep their literal form

	var parsed recordsResponse
	if err := decoder.Decode(&parsed); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("parsing records response: %w", err)}
	}

	if parsed.Code != 0 {
		c.logger.Warn("Upstream declined record read",
			"code", parsed.Code,
			"msg", parsed.Msg,
			"table_id", tableID,
		)
		return []Record{}, nil
	}
	if parsed.Data.Items == nil {
		c.logger.Warn("Upstream record read returned no item collection", "table_id", tableID)
		return []Record{}, nil
	}

	c.logger.Debug("Fetched records",
		"table_id", tableID,
		"field_name", fieldName,
		"count", len(parsed.Data.Items),
	)
	return parsed.Data.Items, nil
}
