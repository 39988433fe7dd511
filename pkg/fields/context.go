package fields

import (
	"strings"
	"time"
)

// Context is the substitution context handed to the template walker: the
// union of both field maps plus computed case metadata.
type Context map[string]string

// Meta carries the case metadata injected into every context.
type Meta struct {
	// Municipality is the bare municipality name, without the "Gmina" prefix.
	Municipality string
	// CaseNumber is the opaque case identifier.
	CaseNumber string
	// Now anchors the derived date defaults. The zero value means time.Now.
	Now time.Time
}

func (m Meta) now() time.Time {
	if m.Now.IsZero() {
		return time.Now()
	}
	return m.Now
}

// DefaultConstructionType backfills rodzaj_zabudowy for decision documents
// when the form left it blank.
const DefaultConstructionType = "zabudowa mieszkaniowa jednorodzinna"

// BuildContext merges the application and findings maps into one context.
// Application values are copied first and findings overwrite on collision,
// except for application-only keys, where the application value always wins.
// The computed gmina and case_number entries override both. No key present in
// either source is lost.
func BuildContext(wniosek, analiza FieldMap, meta Meta) Context {
	ctx := make(Context, len(wniosek)+len(analiza)+2)
	for k, v := range wniosek {
		ctx[k] = v
	}
	for k, v := range analiza {
		ctx[k] = v
	}
	// Application-only values hold the bare key against findings collisions
	// and stay reachable under the wniosek_ prefix as well.
	for _, key := range ApplicationOnlyKeys() {
		if v := wniosek.Get(key); v != "" {
			ctx[key] = v
			ctx[ApplicationOnlyPrefix+key] = v
		}
	}
	ctx["gmina"] = "Gmina " + meta.Municipality
	ctx["case_number"] = meta.CaseNumber
	return ctx
}

// BuildDecisionContext extends BuildContext with the decision-only defaults:
// the four keys a decision template always references are backfilled from the
// clock and a fixed phrase when absent or blank.
func BuildDecisionContext(wniosek, analiza FieldMap, meta Meta) Context {
	ctx := BuildContext(wniosek, analiza, meta)
	now := meta.now()
	backfill(ctx, "data", now.Format("02.01.2006")+" r.")
	backfill(ctx, "data_zlozenia_wniosku", now.Format("02.01.2006"))
	backfill(ctx, "data_uzupelnienia_wniosku", now.Format("02.01.2006"))
	backfill(ctx, "rodzaj_zabudowy", DefaultConstructionType)
	return ctx
}

func backfill(ctx Context, key, value string) {
	if strings.TrimSpace(ctx[key]) == "" {
		ctx[key] = value
	}
}
