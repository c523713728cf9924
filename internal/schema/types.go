package schema

// ValueMeaning maps a literal column value to what it means in the dataset.
type ValueMeaning struct {
	Value   string
	Meaning string
}

// ColumnDoc documents a single dados_sus3 column. Text is kept in pt-BR,
// matching the DATASUS documentation the dataset ships with.
type ColumnDoc struct {
	Name          string
	Title         string
	Type          string
	Description   string
	Examples      []string
	ValidValues   []ValueMeaning
	SpecialValues []ValueMeaning
	Range         string
	Format        string
	Validation    string
	CommonUse     string
	Relation      string
	ExampleQuery  string
	Note          string
}

// QueryExample is a named reference query.
type QueryExample struct {
	Name string
	SQL  string
}

// AntiPattern is a query that looks right and is not, with the reason why.
type AntiPattern struct {
	SQL         string
	Explanation string
}

// MortalityGuide is the declarative reference for counting deaths correctly.
type MortalityGuide struct {
	PrimaryField   string
	Description    string
	CauseField     string
	CorrectQueries []QueryExample
	AntiPatterns   []AntiPattern
}

// Validation is the advisory result of checking a SQL string against the
// known domain pitfalls. IsValid is true exactly when Issues is empty;
// Suggestions never affect validity.
type Validation struct {
	Query       string
	Issues      []string
	Suggestions []string
	IsValid     bool
}
