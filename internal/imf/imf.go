package imf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/apperrors"
)

// Row is one loosely-typed observation from the IMF data service. Column names
// are kept exactly as the provider sends them ("@REF_AREA", "@TIME_PERIOD", ...);
// normalization into the canonical schema happens downstream.
type Row map[string]string

// DatasetQuery describes one CompactData request. Empty Indicators or Countries
// leave the corresponding dimension unfiltered. Freq defaults to annual.
type DatasetQuery struct {
	Database   string
	Indicators []string
	Countries  []string
	Freq       string
}

// Client defines the interface for fetching tabular data from the IMF data
// service. This interface enables dependency injection and testing with mock
// implementations.
type Client interface {
	FetchDataset(ctx context.Context, query DatasetQuery) ([]Row, error)
	FetchCountries(ctx context.Context, database string) ([]Row, error)
}

// DataClient queries the IMF SDMX JSON REST service.
type DataClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewDataClient creates an IMF data service client.
//
// Parameters:
//   - baseURL: service root, e.g. "http://dataservices.imf.org/REST/SDMX_JSON.svc"
//   - timeout: per-call HTTP timeout
func NewDataClient(baseURL string, timeout time.Duration) *DataClient {
	return &DataClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// compactData mirrors the CompactData envelope. Series and Obs arrive as an
// object when single and an array otherwise, so both decode through sdmxList.
type compactData struct {
	CompactData struct {
		DataSet struct {
			Series json.RawMessage `json:"Series"`
		} `json:"DataSet"`
	} `json:"CompactData"`
}

type codelistStructure struct {
	Structure struct {
		CodeLists struct {
			CodeList json.RawMessage `json:"CodeList"`
		} `json:"CodeLists"`
	} `json:"Structure"`
}

// FetchDataset retrieves observations for a dataset and flattens each series'
// attributes onto its observations, producing one Row per observation with the
// provider's raw column names.
func (c *DataClient) FetchDataset(ctx context.Context, query DatasetQuery) ([]Row, error) {
	freq := query.Freq
	if freq == "" {
		freq = "A"
	}
	key := fmt.Sprintf("%s.%s.%s", freq, strings.Join(query.Countries, "+"), strings.Join(query.Indicators, "+"))
	requestURL := fmt.Sprintf("%s/CompactData/%s/%s", c.baseURL, query.Database, key)

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var envelope compactData
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	seriesList, err := sdmxList(envelope.CompactData.DataSet.Series)
	if err != nil {
		return nil, fmt.Errorf("decoding series: %w", err)
	}

	var rows []Row
	for _, series := range seriesList {
		attrs := Row{}
		for name, raw := range series {
			if strings.HasPrefix(name, "@") {
				attrs[name] = scalarString(raw)
			}
		}

		obsList, err := sdmxList(series["Obs"])
		if err != nil {
			return nil, fmt.Errorf("decoding observations: %w", err)
		}

		for _, obs := range obsList {
			row := Row{}
			for name, value := range attrs {
				row[name] = value
			}
			for name, raw := range obs {
				if strings.HasPrefix(name, "@") {
					row[name] = scalarString(raw)
				}
			}
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// FetchCountries retrieves the geographical-area codelist for a database. Each
// Row carries input_code and description, every value stringified.
func (c *DataClient) FetchCountries(ctx context.Context, database string) ([]Row, error) {
	requestURL := fmt.Sprintf("%s/DataStructure/%s", c.baseURL, database)

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var envelope codelistStructure
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding data structure: %w", err)
	}

	codelists, err := sdmxList(envelope.Structure.CodeLists.CodeList)
	if err != nil {
		return nil, fmt.Errorf("decoding codelists: %w", err)
	}

	for _, codelist := range codelists {
		if !strings.HasPrefix(scalarString(codelist["@id"]), "CL_AREA") {
			continue
		}

		codes, err := sdmxList(codelist["Code"])
		if err != nil {
			return nil, fmt.Errorf("decoding area codes: %w", err)
		}

		rows := make([]Row, 0, len(codes))
		for _, code := range codes {
			rows = append(rows, Row{
				"input_code":  scalarString(code["@value"]),
				"description": descriptionText(code["Description"]),
			})
		}
		return rows, nil
	}

	return nil, fmt.Errorf("no area codelist found for database %s", database)
}

func (c *DataClient) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: imf service returned status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	return body, nil
}

// sdmxList decodes an SDMX JSON element that may be a single object, an array
// of objects, or absent.
func sdmxList(raw json.RawMessage) ([]map[string]json.RawMessage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var list []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var single map[string]json.RawMessage
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []map[string]json.RawMessage{single}, nil
}

// scalarString renders an SDMX attribute value as a string, whether the
// provider sent it quoted or as a bare number.
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// descriptionText extracts the "#text" entry of an SDMX description object,
// falling back to the scalar form when the provider flattens it.
func descriptionText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var nested map[string]json.RawMessage
	if err := json.Unmarshal(raw, &nested); err == nil {
		if text, ok := nested["#text"]; ok {
			return scalarString(text)
		}
		return ""
	}
	return scalarString(raw)
}
