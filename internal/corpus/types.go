package corpus

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexString decodes JSON values that appear as either strings or numbers.
// Decision numbers and years are strings in most source files but bare
// numbers in a few older ones.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = FlexString(v)
		return nil
	}
	// Bare number; integers must not pick up a float suffix
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Country holds jurisdiction identity fields carried on each law file record.
type Country struct {
	Name       string `json:"countryName"`
	Alpha3Code string `json:"alpha3Code"`
	FlagCode   string `json:"flagCode"`
	PhoneCode  string `json:"phoneCode"`
}

// CountryData is one record of a law file: a country plus its laws.
type CountryData struct {
	Country
	Laws []Law `json:"laws"`
}

// Law groups the documents published under one statute.
type Law struct {
	FullName   string     `json:"lawFullName"`
	ShortName  string     `json:"lawShortName"`
	Articles   []Article  `json:"articles"`
	Decisions  []Decision `json:"decisions"`
	Guidelines []Guidance `json:"guidelines"`
	Treaties   []Treaty   `json:"treaties"`
}

// PathSegment is one breadcrumb element of an article's section path.
type PathSegment struct {
	Name string `json:"name"`
}

// Article is a single provision of a law.
type Article struct {
	Number          FlexString    `json:"number"`
	Title           string        `json:"title"`
	OrderIndex      int           `json:"orderIndex"`
	Path            []PathSegment `json:"path"`
	Content         string        `json:"content"`
	TextOnly        string        `json:"textOnly"`
	MetaTitle       string        `json:"metaTitle"`
	MetaDescription string        `json:"metaDescription"`
	MetaKeywords    string        `json:"metaKeywords"`
	RelatedDocs     []string      `json:"relatedDocs"`
}

// Eligible reports whether the article can be slugged and published.
func (a Article) Eligible() bool {
	return a.Number != "" && a.Title != ""
}

// Decision is an executive or regulatory decision issued under a law.
type Decision struct {
	Number          FlexString `json:"number"`
	Year            FlexString `json:"year"`
	Type            string     `json:"type"` // coded as "<ABBREV> - <FullName>"
	Title           string     `json:"title"`
	Name            string     `json:"name"`
	Content         string     `json:"content"`
	TextOnly        string     `json:"textOnly"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	MetaKeywords    string     `json:"metaKeywords"`
	RelatedDocs     []string   `json:"relatedDocs"`
}

// Eligible reports whether the decision can be slugged and published.
// Some decisions legitimately lack a number, so any identifier suffices.
func (d Decision) Eligible() bool {
	return d.Number != "" || d.Title != "" || d.Year != ""
}

// Guidance is an authority guide, clarification, circular or manual.
// It references its law by slug rather than by structural nesting, since
// guidance records live both inside law files and in standalone files.
type Guidance struct {
	UniqueCode      string     `json:"uniqueCode"`
	Type            string     `json:"type"` // coded like Decision.Type
	LawSlug         string     `json:"lawSlug"`
	Title           string     `json:"title"`
	Year            FlexString `json:"year"`
	Content         string     `json:"content"`
	TextOnly        string     `json:"textOnly"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	MetaKeywords    string     `json:"metaKeywords"`
	RelatedDocs     []string   `json:"relatedDocs"`
}

// Eligible reports whether the guidance can be slugged and published.
func (g Guidance) Eligible() bool {
	return g.UniqueCode != "" || g.Title != ""
}

// Treaty is a double taxation avoidance agreement between two countries.
type Treaty struct {
	Country1Slug        string     `json:"country1Slug"`
	Country2Alpha3Code  string     `json:"country2Alpha3Code"`
	Country2Name        string     `json:"country2Name"`
	OfficialTranslation *bool      `json:"officialTranslation"`
	Title               string     `json:"title"`
	FlagCode            string     `json:"flagCode"`
	Year                FlexString `json:"year"`
	IssueDate           string     `json:"issueDate"`
	Content             string     `json:"content"`
	TextOnly            string     `json:"textOnly"`
	MetaTitle           string     `json:"metaTitle"`
	MetaDescription     string     `json:"metaDescription"`
	MetaKeywords        string     `json:"metaKeywords"`
	RelatedDocs         []string   `json:"relatedDocs"`
}

// Eligible reports whether the treaty can be slugged and published.
func (t Treaty) Eligible() bool {
	return t.Country2Alpha3Code != "" && t.Title != ""
}

// Official reports the translation status, defaulting to official when absent.
func (t Treaty) Official() bool {
	return t.OfficialTranslation == nil || *t.OfficialTranslation
}

// Blog is a flat editorial post with no parent law.
type Blog struct {
	Title           string   `json:"title"`
	Published       bool     `json:"published"`
	PublishedDate   string   `json:"publishedDate"`
	Description     string   `json:"description"`
	Excerpt         string   `json:"excerpt"`
	Author          string   `json:"author"`
	Category        string   `json:"category"`
	ImageURL        string   `json:"imageUrl"`
	Content         string   `json:"content"`
	ContentFormat   string   `json:"contentFormat"` // "markdown" renders through goldmark
	MetaDescription string   `json:"metaDescription"`
	MetaKeywords    string   `json:"metaKeywords"`
	RelatedDocs     []string `json:"relatedDocs"`
}

// Eligible reports whether the blog can be slugged and published.
// Unpublished and untitled posts are excluded from all output and cross-links.
func (b Blog) Eligible() bool {
	return b.Published && b.Title != ""
}

// Corpus is the complete in-memory document set for one generation run.
// Record order follows source file order and is never mutated after load.
type Corpus struct {
	Countries []CountryData
	Guidances []Guidance
	Treaties  []Treaty
	Blogs     []Blog
}
