package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type GameRecord struct {
	ID          int
	Opponent    string
	CustomFirst bool
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// OpponentSummary aggregates the custom player's results against one opponent.
type OpponentSummary struct {
	Opponent     string  `yaml:"opponent"`
	Games        int     `yaml:"games"`
	Wins         int     `yaml:"wins"`
	WinRate      float64 `yaml:"win_rate"`
	Forfeits     int     `yaml:"forfeits"`
	MeanMoves    float64 `yaml:"mean_moves"`
	StdDevMoves  float64 `yaml:"stddev_moves"`
	MeanDepth    float64 `yaml:"mean_depth"`
	MeanNodes    float64 `yaml:"mean_nodes"`
	TimeoutMoves int     `yaml:"timeout_moves"`
}

type Summary struct {
	Name      string            `yaml:"name"`
	CreatedAt time.Time         `yaml:"created_at"`
	Opponents []OpponentSummary `yaml:"opponents"`
}

// Throughput is the search rate of self-play at one depth limit.
type Throughput struct {
	DepthLimit     int           `yaml:"depth_limit"`
	Moves          int           `yaml:"moves"`
	Nodes          int           `yaml:"nodes"`
	Elapsed        time.Duration `yaml:"elapsed"`
	NodesPerSecond float64       `yaml:"nodes_per_second"`
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "opponent", "custom_first", "starting_agent", "winner", "forfeit", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Opponent,
			strconv.FormatBool(record.CustomFirst),
			record.StartingAgent,
			record.Winner,
			strconv.FormatBool(record.Forfeit),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "action", "elapsed", "publications", "timed_out", "depth", "nodes", "evaluations", "cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Action),
			record.Elapsed.String(),
			strconv.Itoa(record.Publications),
			strconv.FormatBool(record.TimedOut),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Evaluations),
			strconv.Itoa(record.Cutoffs),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteSummary(summary Summary) error {
	return w.writeYAML("summary.yaml", summary)
}

func (w *Writer) WriteThroughput(results []Throughput) error {
	return w.writeYAML("throughput.yaml", results)
}

func (w *Writer) writeYAML(file string, v any) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return encoder.Close()
}
