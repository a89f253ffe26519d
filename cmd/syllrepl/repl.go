package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/npillmayer/syllabo/analysis"
	"github.com/npillmayer/syllabo/config"
	"github.com/npillmayer/syllabo/earley"
	"github.com/npillmayer/syllabo/grammar"
	"github.com/npillmayer/syllabo/inventory"
	"github.com/npillmayer/syllabo/lexicon"
	"github.com/npillmayer/syllabo/phonology"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var traceKeys = []string{
	"syllabo.inventory",
	"syllabo.grammar",
	"syllabo.earley",
	"syllabo.phonology",
	"syllabo.analysis",
	"syllabo.lexicon",
	"syllabo.repl",
}

// main() starts an interactive CLI, where users may enter words of a language
// described by an inventory file. The REPL will print the syllable structure of
// each word.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	cfgpath := flag.String("config", "", "Configuration file")
	invpath := flag.String("inventory", "", "Inventory file, overrides configuration")
	lexpath := flag.String("lexicon", "", "Lexicon file, overrides configuration")
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error], overrides configuration")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to SyllREPL")
	//
	cfg, err := config.Load(*cfgpath)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	if *invpath != "" {
		cfg.Inventory = *invpath
	}
	if *lexpath != "" {
		cfg.Lexicon = *lexpath
	}
	if *tlevel != "" {
		cfg.Trace.Level = *tlevel
	}
	tracer().Infof("Trace level is %s", cfg.Trace.Level)
	setTraceLevel(traceLevel(cfg.Trace.Level))
	//
	// set up inventory, lexicon and analyzer
	if cfg.Inventory == "" {
		pterm.Error.Println("no inventory given, use flag -inventory or configuration")
		os.Exit(2)
	}
	inv, err := inventory.Load(cfg.Inventory)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	lex := lexicon.NewStore()
	if cfg.Lexicon != "" {
		if lex, err = lexicon.Load(cfg.Lexicon); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	opts := []analysis.Option{analysis.ChunkSize(cfg.Analysis.ChunkSize)}
	if ignored, ok := cfg.IgnoredOverride(); ok {
		opts = append(opts, analysis.IgnoredCharacters(ignored))
	}
	//
	// set up REPL
	repl, err := readline.New("syll> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{
		analyzer: analysis.New(inv, opts...),
		lexicon:  lex,
		repl:     repl,
	}
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		_ = intp.analyse(input)
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	analyzer *analysis.Analyzer
	lexicon  *lexicon.Store
	repl     *readline.Instance
}

type command struct {
	help string
	run  func(intp *Intp, arg string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"tree":    {"show the parse tree of a word", (*Intp).tree},
		"alt":     {"list all parses of a word", (*Intp).alternatives},
		"rules":   {"print the grammar, or write it to a file", (*Intp).rules},
		"diff":    {"compare the grammar with rules read from a file", (*Intp).diff},
		"classes": {"list natural classes and their members, or those of one class", (*Intp).classes},
		"batch":   {"re-analyse all words of the lexicon", (*Intp).batch},
		"words":   {"list the lexicon", (*Intp).words},
		"help":    {"list commands", (*Intp).help},
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command, given on a line by itself. Lines which do not start
// with a command name are analysed as words.
func (intp *Intp) Eval(line string) (bool, error) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	if cmd == "quit" || cmd == "exit" {
		return true, nil
	}
	if c, ok := commands[cmd]; ok {
		return false, c.run(intp, arg)
	}
	return false, intp.analyse(line)
}

func (intp *Intp) analyse(word string) error {
	syllables, ok := intp.analyzer.Analyze(word)
	if !ok {
		return fmt.Errorf("cannot parse %q", word)
	}
	printSyllables(syllables)
	pterm.Info.Printf("spelling %q, representation /%s/\n",
		intp.analyzer.Spell(syllables), intp.analyzer.Represent(syllables))
	return nil
}

func (intp *Intp) tree(word string) error {
	tree := intp.analyzer.Parse(word)
	if tree.IsEmpty() {
		return fmt.Errorf("cannot parse %q", word)
	}
	printTree(word, tree)
	return nil
}

func (intp *Intp) alternatives(word string) error {
	trees := intp.analyzer.Alternatives(word)
	if len(trees) == 0 {
		return fmt.Errorf("cannot parse %q", word)
	}
	pterm.Info.Printf("%d parse(s) for %q, first one is selected\n", len(trees), word)
	for i, t := range trees {
		printTree(fmt.Sprintf("#%d", i+1), t)
	}
	return nil
}

func (intp *Intp) rules(filename string) error {
	rules := intp.analyzer.Rules()
	if filename == "" {
		return grammar.WriteRules(os.Stdout, rules)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = grammar.WriteRules(f, rules); err != nil {
		return err
	}
	pterm.Info.Printf("%d rules written to %s\n", len(rules), filename)
	return nil
}

func (intp *Intp) diff(filename string) error {
	if filename == "" {
		return fmt.Errorf("usage: diff <file>")
	}
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	read, err := grammar.ReadRules(f)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	missing, extra := grammar.Diff(intp.analyzer.Rules(), read)
	if len(missing) == 0 && len(extra) == 0 {
		pterm.Success.Printf("%s matches the grammar\n", filename)
		return nil
	}
	for _, r := range missing {
		pterm.Println("- " + r.String())
	}
	for _, r := range extra {
		pterm.Println("+ " + r.String())
	}
	return nil
}

func (intp *Intp) classes(name string) error {
	ix := intp.analyzer.Inventory().Index()
	data := pterm.TableData{{"Class", "Members"}}
	if name != "" {
		if !ix.Has(name) {
			return fmt.Errorf("unknown class %q", name)
		}
		data = append(data, []string{name, strings.Join(ix.Members(name), " ")})
	} else {
		ix.Each(func(class string, members []string) {
			data = append(data, []string{class, strings.Join(members, " ")})
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}

func (intp *Intp) words(string) error {
	data := pterm.TableData{{"Word", "Gloss", "Syllables"}}
	for _, id := range intp.lexicon.IDs() {
		w, err := intp.lexicon.Word(id)
		if err != nil {
			return err
		}
		syllables, err := intp.lexicon.Phonology(id)
		if err != nil {
			return err
		}
		data = append(data, []string{w.Text, w.Gloss, intp.analyzer.Represent(syllables)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}

func (intp *Intp) batch(string) error {
	ids := intp.lexicon.IDs()
	if len(ids) == 0 {
		return fmt.Errorf("lexicon is empty")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	_, err := intp.analyzer.Reanalyze(ctx, ids, intp.lexicon, intp.lexicon, batchListener{intp.lexicon})
	return err
}

func (intp *Intp) help(string) error {
	data := pterm.TableData{{"Command", "Description"}}
	for _, name := range []string{"tree", "alt", "rules", "diff", "classes", "words", "batch", "help"} {
		data = append(data, []string{name, commands[name].help})
	}
	data = append(data, []string{"quit", "leave"})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Println("any other input is analysed as a word")
	return nil
}

// --- Output ----------------------------------------------------------------

// batchListener reports the progress of a batch run on the terminal.
type batchListener struct {
	lexicon *lexicon.Store
}

func (l batchListener) WordParsed(id uuid.UUID, syllables []phonology.Syllable, ok bool) {
	if !ok {
		text, _ := l.lexicon.WordText(id)
		pterm.Warning.Printf("cannot parse %q\n", text)
	}
}

func (l batchListener) Progress(done, total int) {
	pterm.Info.Printf("%d of %d words\n", done, total)
}

func (l batchListener) Finished(stats analysis.Stats) {
	pterm.Success.Println(stats.String())
}

func printSyllables(syllables []phonology.Syllable) {
	data := pterm.TableData{{"#", "Onset", "Peak", "Coda", "Suprasegmentals"}}
	for i, s := range syllables {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			slotString(s.Onset),
			slotString(s.Peak),
			slotString(s.Coda),
			strings.Join(s.Supras, " "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func slotString(phonemes []phonology.SlotPhoneme) string {
	var b strings.Builder
	for i, p := range phonemes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Name)
		if len(p.Supras) > 0 {
			b.WriteString("{" + strings.Join(p.Supras, ",") + "}")
		}
	}
	return b.String()
}

func printTree(label string, tree *earley.TreeNode) {
	pterm.Println(label)
	root := pterm.NewTreeFromLeveledList(leveledNode(tree, pterm.LeveledList{}, 0))
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledNode(node *earley.TreeNode, ll pterm.LeveledList, level int) pterm.LeveledList {
	text := node.Label
	if node.IsLeaf() {
		text = fmt.Sprintf("%s %q", node.Label, node.Payload)
	} else if node.Context {
		text += " (context)"
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	for _, ch := range node.Children {
		ll = leveledNode(ch, ll, level+1)
	}
	return ll
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
