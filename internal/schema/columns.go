package schema

// columnDocs holds the documentation for every dados_sus3 column, keyed by
// canonical uppercase name. Built once; never mutated after init.
var columnDocs = map[string]ColumnDoc{
	// Diagnóstico
	"DIAG_PRINC": {
		Name:        "DIAG_PRINC",
		Title:       "Diagnóstico Principal",
		Type:        "TEXT",
		Description: "Código CID-10 do diagnóstico principal da internação",
		Examples:    []string{"A46", "C168", "J128"},
		SpecialValues: []ValueMeaning{
			{"U99", "CID 10ª Revisão não disponível (período de transição)"},
		},
		Validation: "Código CID-10 válido",
		CommonUse:  "Identificar principal motivo da internação",
	},

	// Geografia
	"MUNIC_RES": {
		Name:        "MUNIC_RES",
		Title:       "Município de Residência",
		Type:        "BIGINT",
		Description: "Código IBGE do município de residência do paciente",
		Examples:    []string{"431490", "430300", "355030"},
		Validation:  "Código IBGE válido de 6 dígitos",
		CommonUse:   "Análises geográficas por código IBGE",
		Note:        "Use CIDADE_RESIDENCIA_PACIENTE para filtrar por nome da cidade",
	},
	"MUNIC_MOV": {
		Name:        "MUNIC_MOV",
		Title:       "Município de Movimentação",
		Type:        "BIGINT",
		Description: "Código IBGE do município onde ocorreu a internação",
		Examples:    []string{"431490", "430300", "355030"},
		Validation:  "Código IBGE válido de 6 dígitos",
		CommonUse:   "Fluxos de pacientes entre municípios",
	},
	"UF_RESIDENCIA_PACIENTE": {
		Name:        "UF_RESIDENCIA_PACIENTE",
		Title:       "UF de Residência",
		Type:        "TEXT",
		Description: "Sigla da Unidade Federativa de residência do paciente",
		Examples:    []string{"RS", "SP", "RJ", "PR"},
		Validation:  "Sigla UF válida (2 caracteres)",
		CommonUse:   "Análises por estado",
	},
	"CIDADE_RESIDENCIA_PACIENTE": {
		Name:        "CIDADE_RESIDENCIA_PACIENTE",
		Title:       "Cidade de Residência",
		Type:        "TEXT",
		Description: "Nome completo da cidade de residência do paciente",
		Examples:    []string{"Porto Alegre", "Santa Maria", "Caxias do Sul"},
		CommonUse:   "Filtrar por cidade específica - CAMPO PREFERIDO para consultas por cidade",
		Note:        "Use este campo ao invés de MUNIC_RES para perguntas sobre cidades",
	},

	// Demografia
	"IDADE": {
		Name:        "IDADE",
		Title:       "Idade",
		Type:        "BIGINT",
		Description: "Idade do paciente no momento da internação (em anos)",
		Range:       "0 a 120 anos",
		SpecialValues: []ValueMeaning{
			{"0", "Recém-nascidos (menos de 1 ano)"},
			{">= 120", "Idade inconsistente (verificar dados)"},
		},
		CommonUse: "Análises demográficas, faixas etárias",
	},
	"SEXO": {
		Name:        "SEXO",
		Title:       "Sexo",
		Type:        "BIGINT",
		Description: "Sexo do paciente",
		ValidValues: []ValueMeaning{
			{"1", "Masculino"},
			{"3", "Feminino"},
		},
		Note:      "ATENÇÃO: Usa códigos 1 e 3 (padrão DATASUS), não 1 e 2!",
		CommonUse: "Análises de gênero, epidemiologia",
	},

	// Morte e óbito
	"MORTE": {
		Name:        "MORTE",
		Title:       "Indicador de Óbito",
		Type:        "BIGINT",
		Description: "Indica se o paciente morreu durante a internação",
		ValidValues: []ValueMeaning{
			{"0", "Paciente NÃO morreu (alta, transferência, etc.)"},
			{"1", "Paciente MORREU durante a internação"},
		},
		CommonUse:    "Calcular mortalidade hospitalar - CAMPO PRINCIPAL PARA CONTAR MORTES",
		ExampleQuery: "SELECT COUNT(*) FROM dados_sus3 WHERE MORTE = 1",
		Note:         "SEMPRE use MORTE = 1 para contar mortes, nunca CID_MORTE > 0",
	},
	"CID_MORTE": {
		Name:        "CID_MORTE",
		Title:       "CID da Causa da Morte",
		Type:        "BIGINT",
		Description: "Código CID-10 da causa básica da morte (quando MORTE = 1)",
		ValidValues: []ValueMeaning{
			{"0", "Paciente não morreu OU causa não informada"},
			{"> 0", "Código CID-10 da causa da morte"},
		},
		Relation:     "Só tem valor quando MORTE = 1 (mas nem sempre preenchido)",
		CommonUse:    "Análise de causas de morte hospitalar",
		ExampleQuery: "SELECT COUNT(*) FROM dados_sus3 WHERE MORTE = 1 AND CID_MORTE > 0",
		Note:         "NÃO usar para contar mortes! Usar apenas para analisar causas quando MORTE = 1",
	},

	// Procedimentos e custos
	"PROC_REA": {
		Name:        "PROC_REA",
		Title:       "Procedimento Realizado",
		Type:        "BIGINT",
		Description: "Código do procedimento principal realizado na internação",
		Examples:    []string{"303080078", "304100021", "303140151"},
		CommonUse:   "Análises de procedimentos médicos",
	},
	"VAL_TOT": {
		Name:        "VAL_TOT",
		Title:       "Valor Total",
		Type:        "FLOAT",
		Description: "Valor total pago pela internação (em Reais)",
		Examples:    []string{"292.62", "797.11", "4987.52"},
		CommonUse:   "Análises de custos hospitalares",
	},

	// UTI
	"UTI_MES_TO": {
		Name:        "UTI_MES_TO",
		Title:       "Dias de UTI",
		Type:        "BIGINT",
		Description: "Número total de dias que o paciente permaneceu em UTI",
		ValidValues: []ValueMeaning{
			{"0", "Não ficou em UTI"},
			{"> 0", "Número de dias em UTI"},
		},
		CommonUse: "Análises de complexidade, custos de UTI",
	},

	// Hospital
	"CNES": {
		Name:        "CNES",
		Title:       "Código CNES",
		Type:        "BIGINT",
		Description: "Código do estabelecimento de saúde no Cadastro Nacional de Estabelecimentos de Saúde",
		Examples:    []string{"2266474"},
		CommonUse:   "Identificar hospital específico",
	},

	// Datas
	"DT_INTER": {
		Name:        "DT_INTER",
		Title:       "Data de Internação",
		Type:        "BIGINT",
		Description: "Data da internação no formato AAAAMMDD",
		Examples:    []string{"20170803", "20170726"},
		Format:      "YYYYMMDD",
		CommonUse:   "Análises temporais, sazonalidade",
	},
	"DT_SAIDA": {
		Name:        "DT_SAIDA",
		Title:       "Data de Saída",
		Type:        "BIGINT",
		Description: "Data da alta/saída no formato AAAAMMDD",
		Examples:    []string{"20170808", "20170803"},
		Format:      "YYYYMMDD",
		CommonUse:   "Calcular tempo de permanência",
	},

	// Agregações
	"TOTAL_OCORRENCIAS": {
		Name:        "TOTAL_OCORRENCIAS",
		Title:       "Total de Ocorrências",
		Type:        "BIGINT",
		Description: "Contador de ocorrências (campo calculado)",
		CommonUse:   "Agregações, contagens",
	},

	// Coordenadas
	"LATI_CIDADE_RES": {
		Name:        "LATI_CIDADE_RES",
		Title:       "Latitude da Cidade",
		Type:        "FLOAT",
		Description: "Latitude da cidade de residência do paciente",
		Examples:    []string{"-29.6860512", "-30.0346471"},
		CommonUse:   "Análises geoespaciais, mapas",
	},
	"LONG_CIDADE_RES": {
		Name:        "LONG_CIDADE_RES",
		Title:       "Longitude da Cidade",
		Type:        "FLOAT",
		Description: "Longitude da cidade de residência do paciente",
		Examples:    []string{"-53.8069214", "-51.2176584"},
		CommonUse:   "Análises geoespaciais, mapas",
	},
}

// ruleTopics fixes the presentation order of the business-rule topics.
var ruleTopics = []string{"mortalidade", "geografia", "sexo", "uti", "datas", "valores"}

// businessRules are the domain conventions the LLM prompt teaches and the
// validator polices. Prose only; the executable checks live in validate.go.
var businessRules = map[string][]string{
	"mortalidade": {
		"Para contar mortes: usar MORTE = 1 (NÃO MORTE > 0 ou CID_MORTE > 0)",
		"Para analisar causas de morte: usar CID_MORTE > 0 E MORTE = 1",
		"CID_MORTE = 0 significa que não houve morte OU causa não foi informada",
		"Nem todos os casos com MORTE = 1 têm CID_MORTE preenchido",
		"NUNCA use CID_MORTE > 0 para contar mortes - resultados incorretos!",
	},
	"geografia": {
		"MUNIC_RES = código IBGE do município onde o paciente RESIDE",
		"MUNIC_MOV = código IBGE do município onde ocorreu a INTERNAÇÃO",
		"CIDADE_RESIDENCIA_PACIENTE = NOME da cidade (use para filtrar por cidade)",
		"UF_RESIDENCIA_PACIENTE = sigla do estado",
		"Para filtrar por cidade: usar CIDADE_RESIDENCIA_PACIENTE = 'Nome da Cidade'",
		"Para filtrar por código: usar MUNIC_RES = código_ibge",
		"IMPORTANTE: Porto Alegre = código 431490, Santa Maria = código 430300",
		"PREFERIR nome da cidade ao invés de código para maior precisão",
	},
	"sexo": {
		"SEXO = 1 significa Masculino",
		"SEXO = 3 significa Feminino",
		"Não usar SEXO = 2 (não existe no padrão DATASUS)",
		"Cuidado: não é 1=M, 2=F como em outros sistemas",
	},
	"uti": {
		"UTI_MES_TO = 0 significa que não ficou em UTI",
		"UTI_MES_TO > 0 indica número de dias em UTI",
		"Pacientes com UTI_MES_TO > 0 geralmente têm maior VAL_TOT",
	},
	"datas": {
		"DT_INTER <= DT_SAIDA (data internação antes ou igual à saída)",
		"Formato YYYYMMDD (ex: 20170803 = 03/08/2017)",
		"Tempo permanência = DT_SAIDA - DT_INTER (cuidado com cálculo de dias)",
	},
	"valores": {
		"VAL_TOT em Reais (moeda corrente)",
		"Valores muito baixos podem indicar procedimentos simples",
		"Valores altos geralmente associados a UTI ou procedimentos complexos",
	},
}
