package grammarfile

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/lrkit/lr"
)

type tomlGrammar struct {
	Name  string                `toml:"name"`
	Start string                `toml:"start"`
	Rules map[string][][]string `toml:"rules"`
}

// LoadTOML reads a grammar in TOML format. name is used if the document does
// not set a name.
func LoadTOML(name string, r io.Reader) (*lr.Grammar, error) {
	return loadTOML(name, name, r)
}

func loadTOML(name, file string, r io.Reader) (*lr.Grammar, error) {
	var tg tomlGrammar
	md, err := toml.NewDecoder(r).Decode(&tg)
	if err != nil {
		return nil, formatError(file, err, "cannot decode TOML")
	}
	if len(tg.Rules) == 0 {
		return nil, formatError(file, nil, "missing table 'rules'")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		tracer().Infof("%s: ignoring keys %v", file, undecoded)
	}
	rl := &ruleList{name: name, start: tg.Start}
	if tg.Name != "" {
		rl.name = tg.Name
	}
	// Go maps are unordered; the meta data knows the order of the keys in the file
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "rules" {
			continue
		}
		for _, rhs := range tg.Rules[key[1]] {
			rl.add(key[1], rhs)
		}
	}
	return rl.grammar(file)
}
