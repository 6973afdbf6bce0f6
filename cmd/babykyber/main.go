// Command babykyber demonstrates the baby Kyber scheme end to end: it
// generates a key pair, round-trips a text message through encryption and
// decryption, then plays the IND-CPA and IND-CCA experiments and prints
// their statistical reports.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"babykyber/games"
	"babykyber/pke"
)

func main() {
	var (
		message = flag.String("message", "attack at dawn, bring 97 polynomials", "text message for the encryption round-trip")
		trials  = flag.Int("trials", 10000, "number of rounds per adversary experiment")
		plotDir = flag.String("plot", "", "directory for per-batch success rate charts (disabled if empty)")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, *message, *trials, *plotDir); err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}
}

func run(logger *zap.Logger, message string, trials int, plotDir string) error {

	params, err := pke.NewParametersFromLiteral(pke.BabyKyberParams)
	if err != nil {
		return err
	}

	logger.Info("parameters",
		zap.Uint64("q", params.Q()),
		zap.Int("n", params.N()),
		zap.Int("k", params.K()),
		zap.Int("eta", params.Eta()),
	)

	kgen := pke.NewKeyGenerator(params)
	sk, pk := kgen.GenKeyPair()
	logger.Info("key pair generated", zap.Binary("matrixSeed", pk.Seed))

	enc := pke.NewEncryptor(params, pk)
	dec := pke.NewDecryptor(params, sk)

	cts, err := enc.EncryptBytes([]byte(message))
	if err != nil {
		return err
	}
	logger.Info("message encrypted",
		zap.Int("messageBytes", len(message)),
		zap.Int("ciphertextBlocks", len(cts)),
	)

	decrypted, err := dec.DecryptBytes(cts, len(message))
	if err != nil {
		return err
	}

	if string(decrypted) != message {
		logger.Error("round-trip mismatch",
			zap.String("want", message),
			zap.String("got", string(decrypted)),
		)
	} else {
		logger.Info("round-trip successful", zap.String("message", string(decrypted)))
	}

	// Candidate messages of the experiments: the two alternating bit
	// patterns of one block.
	m0 := make([]uint8, params.N())
	m1 := make([]uint8, params.N())
	for i := range m0 {
		m0[i] = uint8((i + 1) % 2)
		m1[i] = uint8(i % 2)
	}

	cpa, err := games.NewCPAGame(params, m0, m1)
	if err != nil {
		return err
	}
	cpaReport, err := cpa.WithLogger(logger).Run(trials)
	if err != nil {
		return err
	}
	fmt.Println(cpaReport)

	cca, err := games.NewCCAGame(params, m0, m1)
	if err != nil {
		return err
	}
	ccaReport, err := cca.WithLogger(logger).Run(trials)
	if err != nil {
		return err
	}
	fmt.Println(ccaReport)

	if plotDir != "" {
		for _, report := range []*games.Report{cpaReport, ccaReport} {
			path := filepath.Join(plotDir, fmt.Sprintf("%s.html", report.Attack))
			if err := games.RenderSuccessChart(report, path); err != nil {
				return err
			}
			logger.Info("chart written", zap.String("path", path))
		}
	}

	return nil
}
