package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/susql/susql/internal/agent"
	"github.com/susql/susql/internal/ai"
	"github.com/susql/susql/internal/schema"
	"github.com/susql/susql/internal/store"
)

const chatBanner = `
╔══════════════════════════════════════════════════════════════╗
║                    🤖 AGENTE SQL INTERATIVO                  ║
║                                                              ║
║                                                              ║
║               Faça perguntas sobre o banco de dados          ║
║                                                              ║
╚══════════════════════════════════════════════════════════════╝
`

const chatHelp = `
📚 COMANDOS DISPONÍVEIS:

  /help ou /ajuda    - Mostra esta ajuda
  /info              - Informações sobre o banco de dados
  /exemplos          - Exemplos de perguntas que você pode fazer
  /schema <COLUNA>   - Documentação de uma coluna específica
  /validate <SQL>    - Valida uma query SQL contra o schema
  /debug on/off      - Liga/desliga modo debug (mostra SQL executado)
  /limpar            - Limpa a tela
  /quit ou /sair     - Sai do programa

🔍 TIPOS DE PERGUNTAS:

  • Sobre estrutura: "Quantas colunas tem a tabela?"
  • Sobre dados: "Quantos registros existem?"
  • Análises: "Qual a média de idade dos pacientes?"
  • Filtros: "Quantos pacientes são do Rio Grande do Sul?"
  • Mortalidade: "Quantas mortes houve em Porto Alegre?"
`

const chatExamples = `
💡 EXEMPLOS DE PERGUNTAS:

📊 ESTRUTURA:
  • "Quantas colunas tem a tabela dados_sus3?"
  • "Qual é a estrutura da tabela?"
  • "Quais são os tipos de dados das colunas?"

📈 CONTAGENS:
  • "Quantos registros existem na tabela?"
  • "Quantos pacientes são do sexo masculino?"
  • "Quantos pacientes morreram?"
  • "Quantas cidades diferentes temos?"

🔍 ANÁLISES:
  • "Qual a idade média dos pacientes?"
  • "Qual o valor total gasto em internações?"
  • "Quantos pacientes ficaram na UTI?"

🏥 FILTROS ESPECÍFICOS:
  • "Quantos pacientes são de Santa Maria?"
  • "Quantas mortes houve em Porto Alegre?"
  • "Quais os principais diagnósticos?"
  • "Qual o procedimento mais realizado?"

🌍 GEOGRÁFICAS:
  • "Quantos estados diferentes temos?"
  • "Quais as cidades com mais pacientes?"
  • "Quais cidades distintas existem?"

💡 DICA: Use modo debug (/debug on) para ver as queries SQL executadas!
`

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive question and answer session",
	Long: `Start an interactive session against the dados_sus3 database.
Type questions in Portuguese and use slash commands (/help, /info,
/exemplos, /schema, /validate, /debug) for the built-in tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// chatSession holds the REPL state. The agent is rebuilt when /debug
// toggles so the new verbosity reaches the whole pipeline.
type chatSession struct {
	out    io.Writer
	client *ai.Client
	st     *store.Store
	ag     *agent.Agent
	debug  bool
}

func runChat() error {
	ctx := context.Background()
	debug := viper.GetBool("debug")

	fmt.Println("🚀 Iniciando agente SQL...")

	client, err := ai.New(aiConfigFromViper())
	if err != nil {
		fmt.Printf("❌ Erro crítico ao inicializar: %v\n", err)
		fmt.Println("🔧 Verifique se:")
		fmt.Println("   • O provider configurado está correto (ollama, openai ou gemini)")
		fmt.Println("   • A chave de API está disponível quando necessária")
		return err
	}

	st, err := openStore(ctx)
	if err != nil {
		fmt.Printf("⚠️  Banco indisponível, seguindo sem execução: %v\n", err)
		fmt.Println("🔧 Verifique se:")
		fmt.Println("   • O arquivo sus_data.db existe")
		fmt.Println("   • A URI do banco está correta na configuração")
		st = nil
	} else {
		defer st.Close()
	}

	session := &chatSession{out: os.Stdout, client: client, st: st, debug: debug}
	session.rebuildAgent()

	fmt.Print(chatBanner)
	fmt.Println("✅ Agente inicializado com sucesso!")
	fmt.Println("🇧🇷 Configurado para responder em português brasileiro")
	if debug {
		fmt.Println("🐛 Modo DEBUG ativado - use '/debug off' para desativar")
	}
	fmt.Println("💡 Digite /help para ver comandos disponíveis")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		if session.debug {
			fmt.Print("🐛 [DEBUG] Digite sua pergunta (ou /help): ")
		} else {
			fmt.Print("🗣️  Digite sua pergunta (ou /help): ")
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\n\n👋 Finalizando...")
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if !session.handleCommand(ctx, line) {
				break
			}
			continue
		}

		session.processQuestion(ctx, line)
		fmt.Println("\n" + strings.Repeat("-", 60) + "\n")
	}

	fmt.Println("\n👋 Obrigado por usar o Agente SQL! Até mais!")
	return nil
}

func (s *chatSession) rebuildAgent() {
	if s.st != nil {
		s.ag = agent.New(s.client, s.st, s.debug)
	} else {
		s.ag = agent.New(s.client, nil, s.debug)
	}
}

// handleCommand runs one slash command and reports whether the REPL
// should keep going.
func (s *chatSession) handleCommand(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}

	switch strings.ToLower(parts[0]) {
	case "/help", "/ajuda":
		fmt.Fprint(s.out, chatHelp)

	case "/info":
		s.showDatabaseInfo(ctx)

	case "/exemplos":
		fmt.Fprint(s.out, chatExamples)

	case "/debug":
		s.handleDebug(parts)

	case "/validate":
		s.handleValidate(parts)

	case "/schema":
		s.handleSchema(parts)

	case "/limpar":
		fmt.Fprint(s.out, "\033[H\033[2J")
		fmt.Fprint(s.out, chatBanner)

	case "/quit", "/sair", "/exit":
		return false

	default:
		fmt.Fprintf(s.out, "❌ Comando desconhecido: %s\n", line)
		fmt.Fprintln(s.out, "💡 Digite /help para ver comandos disponíveis")
	}

	return true
}

func (s *chatSession) handleDebug(parts []string) {
	if len(parts) < 2 {
		s.showDebugStatus()
		fmt.Fprintln(s.out, "💡 Use: /debug on ou /debug off")
		return
	}

	switch strings.ToLower(parts[1]) {
	case "on":
		s.debug = true
		s.rebuildAgent()
		s.showDebugStatus()
	case "off":
		s.debug = false
		s.rebuildAgent()
		s.showDebugStatus()
	default:
		fmt.Fprintln(s.out, "❌ Use: /debug on ou /debug off")
	}
}

func (s *chatSession) showDebugStatus() {
	if s.debug {
		fmt.Fprintln(s.out, "🐛 Debug mode: ✅ ATIVADO")
		fmt.Fprintln(s.out, "   💡 Queries SQL serão exibidas")
		fmt.Fprintln(s.out, "   💡 Use '/debug off' para desativar")
	} else {
		fmt.Fprintln(s.out, "🐛 Debug mode: ❌ DESATIVADO")
		fmt.Fprintln(s.out, "   💡 Queries SQL NÃO serão exibidas")
		fmt.Fprintln(s.out, "   💡 Use '/debug on' para ativar")
	}
}

func (s *chatSession) handleValidate(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(s.out, "❌ Use: /validate SELECT COUNT(*) FROM dados_sus3 WHERE MORTE = 1")
		fmt.Fprintln(s.out, "💡 Exemplo: /validate SELECT COUNT(*) FROM dados_sus3 WHERE CID_MORTE > 0")
		return
	}

	query := strings.Join(parts[1:], " ")
	fmt.Fprintf(s.out, "🔍 Validando query: %s\n", query)
	renderValidation(s.out, schema.ValidateQuerySemantics(query))
}

func (s *chatSession) handleSchema(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(s.out, "❌ Use: /schema NOME_COLUNA")
		fmt.Fprintln(s.out, "💡 Exemplo: /schema MORTE")
		fmt.Fprintln(s.out, "💡 Exemplo: /schema CIDADE_RESIDENCIA_PACIENTE")
		return
	}

	renderColumnDoc(s.out, strings.ToUpper(parts[1]))
}

func (s *chatSession) showDatabaseInfo(ctx context.Context) {
	if s.st == nil {
		fmt.Fprintln(s.out, "❌ Banco de dados não disponível")
		return
	}

	summary, err := s.st.DatabaseSummary(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "⚠️  Erro ao obter info do banco: %v\n", err)
		return
	}

	renderDatabaseSummary(s.out, summary)
}

func (s *chatSession) processQuestion(ctx context.Context, question string) {
	fmt.Fprintf(s.out, "\n🤔 Processando: %s\n", question)
	fmt.Fprintln(s.out, "⏳ Aguarde...")

	result, err := s.ag.Answer(ctx, question)
	if err != nil {
		fmt.Fprintf(s.out, "\n❌ Erro ao processar pergunta: %v\n", err)
		fmt.Fprintln(s.out, "💡 Tente novamente ou digite /help")
		return
	}

	renderResult(s.out, result, s.debug, s.debug)
}
