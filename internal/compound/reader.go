package compound

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/at-ishikawa/chemcalc/internal/compound/pubchem"
	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=reader.go -destination=../mocks/compound/mock_lookuper.go -package=mock_compound

// Lookuper resolves an identifier to compound properties.
type Lookuper interface {
	Lookup(ctx context.Context, identifier string) (Properties, error)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Reader looks compounds up in PubChem PUG REST. A lookup is a single attempt.
type Reader struct {
	config Config
	client *resty.Client
}

var _ Lookuper = (*Reader)(nil)

func NewReader(config Config) *Reader {
	client := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("Accept", "application/json")
	return &Reader{
		config: config,
		client: client,
	}
}

func (r *Reader) lookupAPI(ctx context.Context, identifier string) ([]byte, error) {
	res, err := r.client.R().
		SetContext(ctx).
		SetPathParam("identifier", identifier).
		Get("/compound/name/{identifier}/property/" + pubchem.PropertyNames + "/JSON")
	if err != nil {
		return nil, &LookupError{Identifier: identifier, Reason: ReasonTransport, Err: err}
	}
	if !res.IsSuccess() {
		reason := ReasonStatus
		if res.StatusCode() == http.StatusNotFound {
			reason = ReasonNotFound
		}
		var body pubchem.Response
		if err := json.Unmarshal(res.Body(), &body); err == nil && body.Fault != nil {
			slog.Default().Debug("pubchem fault", "identifier", identifier, "fault", body.Fault.String())
		}
		return nil, &LookupError{
			Identifier: identifier,
			Reason:     reason,
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("response error %d: %s", res.StatusCode(), res.String()),
		}
	}
	return res.Body(), nil
}

// Lookup returns the properties of the best match for identifier, or a *LookupError.
func (r *Reader) Lookup(ctx context.Context, identifier string) (Properties, error) {
	contents, err := r.lookupAPI(ctx, identifier)
	if err != nil {
		return Properties{}, err
	}

	var response pubchem.Response
	if err := json.Unmarshal(contents, &response); err != nil {
		return Properties{}, &LookupError{Identifier: identifier, Reason: ReasonMalformed, Err: fmt.Errorf("json.Unmarshal > %w", err)}
	}
	property, ok := response.First()
	if !ok {
		return Properties{}, &LookupError{Identifier: identifier, Reason: ReasonMalformed, Err: fmt.Errorf("empty property table")}
	}
	if property.MolecularWeight == nil || !isPositive(float64(*property.MolecularWeight)) {
		return Properties{}, &LookupError{Identifier: identifier, Reason: ReasonMalformed, Err: fmt.Errorf("missing or non-positive MolecularWeight")}
	}
	if property.MolecularFormula == "" {
		return Properties{}, &LookupError{Identifier: identifier, Reason: ReasonMalformed, Err: fmt.Errorf("missing MolecularFormula")}
	}

	iupacName := property.IUPACName
	if iupacName == "" {
		iupacName = IUPACNameNotAvailable
	}
	slog.Default().Debug("pubchem lookup", "identifier", identifier, "cid", property.CID)
	return Properties{
		MolecularWeight: float64(*property.MolecularWeight),
		Formula:         property.MolecularFormula,
		IUPACName:       iupacName,
	}, nil
}

func isPositive(value float64) bool {
	return value > 0 && !math.IsInf(value, 1)
}
