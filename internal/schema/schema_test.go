package schema

import (
	"reflect"
	"strings"
	"testing"
)

func TestColumnInfoCaseInsensitive(t *testing.T) {
	tests := []struct {
		name   string
		lookup string
		want   string
	}{
		{name: "lowercase", lookup: "idade", want: "IDADE"},
		{name: "uppercase", lookup: "IDADE", want: "IDADE"},
		{name: "mixed case", lookup: "Morte", want: "MORTE"},
		{name: "city name field", lookup: "cidade_residencia_paciente", want: "CIDADE_RESIDENCIA_PACIENTE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ColumnInfo(tt.lookup)
			if doc.Name != tt.want {
				t.Errorf("ColumnInfo(%q).Name = %q, want %q", tt.lookup, doc.Name, tt.want)
			}
		})
	}
}

func TestColumnInfoIdempotent(t *testing.T) {
	lower := ColumnInfo("idade")
	upper := ColumnInfo("IDADE")
	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("ColumnInfo(\"idade\") = %+v, want same as ColumnInfo(\"IDADE\") = %+v", lower, upper)
	}

	again := ColumnInfo("IDADE")
	if !reflect.DeepEqual(upper, again) {
		t.Error("repeated ColumnInfo calls returned different docs")
	}
}

func TestColumnInfoUnknownColumn(t *testing.T) {
	tests := []string{"FOO_BAR", "foo_bar", "", "DROP TABLE", "ç"}

	for _, lookup := range tests {
		t.Run(lookup, func(t *testing.T) {
			doc := ColumnInfo(lookup)
			if doc.Description != "Coluna não documentada" {
				t.Errorf("ColumnInfo(%q).Description = %q, want the undocumented sentinel", lookup, doc.Description)
			}
			if doc.Type != "Desconhecido" {
				t.Errorf("ColumnInfo(%q).Type = %q, want %q", lookup, doc.Type, "Desconhecido")
			}
			if doc.Name != lookup {
				t.Errorf("ColumnInfo(%q).Name = %q, want the name as given", lookup, doc.Name)
			}
		})
	}
}

func TestDocumented(t *testing.T) {
	if !Documented("morte") {
		t.Error("Documented(\"morte\") = false, want true")
	}
	if Documented("NOT_A_COLUMN") {
		t.Error("Documented(\"NOT_A_COLUMN\") = true, want false")
	}
}

func TestColumnNamesComplete(t *testing.T) {
	names := ColumnNames()
	if len(names) != 18 {
		t.Fatalf("ColumnNames() returned %d columns, want 18", len(names))
	}

	for _, required := range []string{"MORTE", "CID_MORTE", "SEXO", "MUNIC_RES", "CIDADE_RESIDENCIA_PACIENTE", "DT_INTER", "DT_SAIDA"} {
		found := false
		for _, name := range names {
			if name == required {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ColumnNames() missing %q", required)
		}
	}
}

func TestMortalityInfo(t *testing.T) {
	guide := MortalityInfo()

	if guide.PrimaryField != "MORTE" {
		t.Errorf("PrimaryField = %q, want %q", guide.PrimaryField, "MORTE")
	}
	if guide.CauseField != "CID_MORTE" {
		t.Errorf("CauseField = %q, want %q", guide.CauseField, "CID_MORTE")
	}
	if len(guide.CorrectQueries) != 4 {
		t.Fatalf("len(CorrectQueries) = %d, want 4", len(guide.CorrectQueries))
	}
	if guide.CorrectQueries[0].Name != "total_mortes" {
		t.Errorf("first correct query is %q, want total_mortes", guide.CorrectQueries[0].Name)
	}
	if guide.CorrectQueries[0].SQL != "SELECT COUNT(*) FROM dados_sus3 WHERE MORTE = 1" {
		t.Errorf("canonical death count query = %q", guide.CorrectQueries[0].SQL)
	}
	if len(guide.AntiPatterns) != 2 {
		t.Fatalf("len(AntiPatterns) = %d, want 2", len(guide.AntiPatterns))
	}
	for _, ap := range guide.AntiPatterns {
		if ap.Explanation == "" {
			t.Errorf("anti-pattern %q has no explanation", ap.SQL)
		}
	}
}

func TestBusinessRules(t *testing.T) {
	topics := RuleTopics()
	want := []string{"mortalidade", "geografia", "sexo", "uti", "datas", "valores"}
	if !reflect.DeepEqual(topics, want) {
		t.Errorf("RuleTopics() = %v, want %v", topics, want)
	}

	for _, topic := range topics {
		if len(Rules(topic)) == 0 {
			t.Errorf("Rules(%q) is empty", topic)
		}
	}

	mortality := Rules("mortalidade")
	found := false
	for _, rule := range mortality {
		if strings.Contains(rule, "MORTE = 1") {
			found = true
			break
		}
	}
	if !found {
		t.Error("mortality rules never mention MORTE = 1")
	}

	if got := Rules("nope"); len(got) != 0 {
		t.Errorf("Rules(\"nope\") = %v, want empty", got)
	}
}
