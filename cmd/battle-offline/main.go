package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/montplusa/atropos/pkg/ai/minimax"
	"github.com/montplusa/atropos/pkg/ai/neural"
	"github.com/montplusa/atropos/pkg/ai/random"
	"github.com/montplusa/atropos/pkg/ai/trivial"
	"github.com/montplusa/atropos/pkg/game"
)

// 指定されたディレクトリ内の同じプレフィックスを持つファイルの最大連番を取得する
func findMaxSequenceNumber(dir, prefix string) (int, error) {
	// ディレクトリが存在しない場合は0を返す
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	// プレフィックス_NNNNN.json の形式にマッチする正規表現
	pattern := regexp.MustCompile(fmt.Sprintf(`^%s_(\d{5})\.json$`, regexp.QuoteMeta(prefix)))
	maxSeq := 0
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		matches := pattern.FindStringSubmatch(file.Name())
		if len(matches) != 2 {
			continue
		}
		seq, err := strconv.Atoi(matches[1])
		if err != nil {
			continue
		}
		maxSeq = max(maxSeq, seq)
	}
	return maxSeq, nil
}

// newAgent は名前から AI を作る
func newAgent(name, weights string, size int) (game.AI, error) {
	switch name {
	case "minimax":
		return minimax.New(minimax.DefaultConfig(), nil), nil
	case "random":
		return random.New(), nil
	case "trivial":
		return trivial.New(), nil
	case "neural":
		config := neural.DefaultNetworkConfig(size)
		if weights != "" {
			var err error
			if config, err = neural.LoadConfig(weights); err != nil {
				return nil, err
			}
		}
		return neural.New(config)
	}
	return nil, fmt.Errorf("unknown agent %q", name)
}

// 対戦タスクの構造体
type battleTask struct {
	gameIndex int
	seqNum    int
}

// 対戦結果の構造体
type battleResult struct {
	gameIndex int
	result    game.BattleResult
}

type options struct {
	outputDir    string
	outputPrefix string
	noOutput     bool
	agents       [2]string
	weights      string
	size         int
}

// ワーカー関数
func worker(id int, tasks <-chan battleTask, results chan<- battleResult, opts options) error {
	for task := range tasks {
		a0, err := newAgent(opts.agents[0], opts.weights, opts.size)
		if err != nil {
			return err
		}
		a1, err := newAgent(opts.agents[1], opts.weights, opts.size)
		if err != nil {
			return err
		}

		result := game.NewGameRunner(a0, a1, opts.size).Run()

		if !opts.noOutput {
			// 結果をJSONに変換（インデントなし）
			jsonData, err := json.Marshal(result)
			if err != nil {
				return fmt.Errorf("JSONの変換に失敗しました: %w", err)
			}
			// ファイル名の生成（5桁のゼロ詰め連番）
			filename := filepath.Join(opts.outputDir, fmt.Sprintf("%s_%05d.json", opts.outputPrefix, task.seqNum))
			if err := os.WriteFile(filename, jsonData, 0644); err != nil {
				log.Error().Err(err).Str("file", filename).Msg("write-failed")
			}
		}

		results <- battleResult{gameIndex: task.gameIndex, result: result}
		log.Debug().Int("game", task.gameIndex).Int("worker", id).Int("winner", result.Winner).
			Str("reason", result.Reason).Msg("battle-done")
	}
	return nil
}

func main() {
	// コマンドライン引数の解析
	outputDir := flag.String("output", "output", "出力ディレクトリ名")
	outputPrefix := flag.String("output-prefix", "", "出力ファイル名のプレフィックス")
	noOutput := flag.Bool("no-output", false, "出力しない")
	games := flag.Int("games", 1, "実行する試合数")
	numWorkers := flag.Int("workers", runtime.NumCPU(), "ワーカー数")
	p0 := flag.String("p0", "minimax", "先手の AI (minimax|random|trivial|neural)")
	p1 := flag.String("p1", "random", "後手の AI (minimax|random|trivial|neural)")
	weights := flag.String("weights", "", "neural の重みファイル")
	size := flag.Int("size", 7, "盤面サイズ")
	verbose := flag.Bool("v", false, "詳細ログ")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// 出力プレフィックスが指定されていない場合はエラー
	if !*noOutput && *outputPrefix == "" {
		fmt.Println("エラー: --output-prefix は必須です")
		flag.Usage()
		os.Exit(1)
	}
	if *size < 1 {
		fmt.Println("エラー: --size は 1 以上")
		os.Exit(1)
	}

	if !*noOutput {
		// 出力ディレクトリの作成
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			fmt.Printf("エラー: 出力ディレクトリの作成に失敗しました: %v\n", err)
			os.Exit(1)
		}
	}

	// 既存ファイルの最大連番を取得
	maxSeq, err := findMaxSequenceNumber(*outputDir, *outputPrefix)
	if err != nil {
		fmt.Printf("警告: 既存ファイルの確認中にエラーが発生しました: %v\n", err)
	}
	startSeq := maxSeq + 1
	fmt.Printf("連番 %05d から開始します\n", startSeq)
	fmt.Printf("%s 対 %s を %d 回実行します（ワーカー数: %d）\n", *p0, *p1, *games, *numWorkers)

	opts := options{
		outputDir:    *outputDir,
		outputPrefix: *outputPrefix,
		noOutput:     *noOutput,
		agents:       [2]string{*p0, *p1},
		weights:      *weights,
		size:         *size,
	}

	tasks := make(chan battleTask, *games)
	results := make(chan battleResult, *games)
	for i := 0; i < *games; i++ {
		tasks <- battleTask{gameIndex: i, seqNum: startSeq + i}
	}
	close(tasks)

	// ワーカープールの作成
	var g errgroup.Group
	for i := 0; i < *numWorkers; i++ {
		id := i
		g.Go(func() error { return worker(id, tasks, results, opts) })
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("エラー: %v\n", err)
		os.Exit(1)
	}
	close(results)

	// 結果の集計
	wins := []int{0, 0}
	draws := 0
	for r := range results {
		if r.result.Winner == -1 {
			draws++
			continue
		}
		wins[r.result.Winner]++
	}

	fmt.Println("すべての対戦が完了しました")
	fmt.Printf("勝利数: P0(%s): %d, P1(%s): %d, 引き分け: %d\n", *p0, wins[0], *p1, wins[1], draws)
}
