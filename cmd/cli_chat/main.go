package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"proximity-ai/internal/config"
	"proximity-ai/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	responses := service.NewDefaultResponseService()
	if cfg.ResponseRulesFile != "" {
		rules, fallback, err := service.LoadRules(cfg.ResponseRulesFile)
		if err != nil {
			log.Fatalf("cargar reglas: %v", err)
		}
		responses = service.NewResponseService(rules, fallback)
		logger.Info("response rules loaded", zap.String("file", cfg.ResponseRulesFile), zap.Int("rules", len(rules)))
	}

	if err := chatLoop(os.Stdin, os.Stdout, responses); err != nil {
		log.Fatal(err)
	}
}

// chatLoop conversa contra el selector hasta "salir", "exit" o EOF.
func chatLoop(in io.Reader, out io.Writer, responses *service.ResponseService) error {
	reader := bufio.NewReader(in)
	fmt.Fprintln(out, "---- Modo Chat (escribe 'salir' para terminar chat) ----")
	for {
		fmt.Fprint(out, "Tu > ")
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("leer input: %w", err)
		}
		line := strings.TrimSpace(text)
		if strings.EqualFold(line, "salir") || strings.EqualFold(line, "exit") {
			fmt.Fprintln(out)
			return nil
		}
		if line == "" && err == io.EOF {
			fmt.Fprintln(out)
			return nil
		}

		reply := service.ListeningReply
		if line != "" {
			reply = responses.Reply(line)
		}
		fmt.Fprintf(out, "Consultant > %s\n", reply)

		if err == io.EOF {
			return nil
		}
	}
}
