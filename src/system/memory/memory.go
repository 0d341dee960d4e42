package memory

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/voodooEntity/gits"
	"github.com/voodooEntity/gits/src/query"
	"github.com/voodooEntity/gits/src/storage"
	"github.com/voodooEntity/gits/src/transport"
	"github.com/voodooEntity/minigram/src/system/archivist"
	"github.com/voodooEntity/minigram/src/system/grammar"
	"github.com/voodooEntity/minigram/src/system/lexicon"
)

// Store keeps lexicons and derivation history in a gits graph instance.
// Lexicons are mapped as Lexeme->Feature trees with explicit Order
// properties since graph retrieval gives no ordering guarantee and the
// resolver has to honor first-match-wins semantics.
type Store struct {
	Gits *gits.Gits
	log  *archivist.Archivist
}

// DerivationRecord is one remembered derivation outcome
type DerivationRecord struct {
	RunID    string
	Sentence string
	Lexicon  string
	Status   string
	Result   string
	Steps    int
}

func NewStore(ident string, logger *archivist.Archivist) *Store {
	return &Store{
		Gits: gits.NewInstance(ident),
		log:  logger,
	}
}

// MemorizeLexicon maps a full lexicon into storage. A name can only be
// memorized once: the storage is append-only, so re-registering would
// yield doubled items on retrieval instead of replacing them.
func (s *Store) MemorizeLexicon(lex lexicon.Lexicon) error {
	registry := s.Gits.Query().Execute(query.New().Read("Lexicon").Match("Value", "==", lex.Name))
	if registry.Amount > 0 {
		return fmt.Errorf("lexicon %s is already memorized: %w", lex.Name, grammar.ErrInvalidOperation)
	}

	s.Gits.MapData(transport.TransportEntity{
		ID:         0,
		Type:       "Lexicon",
		Value:      lex.Name,
		Context:    "System",
		Properties: make(map[string]string),
	})

	for order, item := range lex.Items {
		lexeme := transport.TransportEntity{
			ID:      storage.MAP_FORCE_CREATE,
			Type:    "Lexeme",
			Value:   item.Phon,
			Context: "Lexicon",
			Properties: map[string]string{
				"Lexicon": lex.Name,
				"Order":   strconv.Itoa(order),
			},
		}
		for featOrder, feat := range item.Feats {
			lexeme.ChildRelations = append(lexeme.ChildRelations, transport.TransportRelation{
				Target: transport.TransportEntity{
					ID:      storage.MAP_FORCE_CREATE,
					Type:    "Feature",
					Value:   feat.String(),
					Context: "Lexicon",
					Properties: map[string]string{
						"Order": strconv.Itoa(featOrder),
					},
				},
			})
		}
		s.Gits.MapData(lexeme)
	}
	s.log.Debug(archivist.DEBUG_LEVEL_DETAIL, "memory memorized lexicon ", lex.Name, " items=", len(lex.Items))
	return nil
}

// ResolveLexeme looks a surface form up in the named lexicon. With
// duplicate surface forms the entry with the lowest mapped order wins.
// The lexeme is read without the feature join first so items memorized
// with an empty feature bundle stay resolvable.
func (s *Store) ResolveLexeme(lexiconName string, phon string) (grammar.LexItem, bool) {
	result := s.Gits.Query().Execute(query.New().Read("Lexeme").
		Match("Value", "==", phon).
		Match("Properties.Lexicon", "==", lexiconName))
	if result.Amount == 0 {
		return grammar.LexItem{}, false
	}

	entities := make([]transport.TransportEntity, len(result.Entities))
	copy(entities, result.Entities)
	sortByOrder(entities)

	entity := entities[0]
	if featured, ok := s.featuredByID(lexiconName)[entity.ID]; ok {
		entity = featured
	}

	item, err := s.lexemeToItem(entity)
	if err != nil {
		s.log.Error("memory found unreadable lexeme ", phon, " error=", err)
		return grammar.LexItem{}, false
	}
	return item, true
}

// RetrieveLexicon rebuilds a memorized lexicon in its original item order.
// Like ResolveLexeme it reads the lexemes without the feature join so
// feature-less items are not dropped.
func (s *Store) RetrieveLexicon(name string) (lexicon.Lexicon, bool) {
	registry := s.Gits.Query().Execute(query.New().Read("Lexicon").Match("Value", "==", name))
	if registry.Amount == 0 {
		return lexicon.Lexicon{}, false
	}

	result := s.Gits.Query().Execute(query.New().Read("Lexeme").
		Match("Properties.Lexicon", "==", name))

	entities := make([]transport.TransportEntity, len(result.Entities))
	copy(entities, result.Entities)
	sortByOrder(entities)

	featured := s.featuredByID(name)

	builder := lexicon.NewBuilder(name)
	for _, entity := range entities {
		if withFeatures, ok := featured[entity.ID]; ok {
			entity = withFeatures
		}
		item, err := s.lexemeToItem(entity)
		if err != nil {
			s.log.Error("memory skipping unreadable lexeme ", entity.Value, " error=", err)
			continue
		}
		builder.Add(item.Phon, item.Feats...)
	}
	return builder.Build(), true
}

// featuredByID runs the feature-joined lexeme read for one lexicon and
// indexes the results by entity id. The join is mandatory on storage
// level, lexemes without any feature child are absent from the result
// and keep their empty bundle on the caller side.
func (s *Store) featuredByID(lexiconName string) map[int]transport.TransportEntity {
	qry := query.New().Read("Lexeme").
		Match("Properties.Lexicon", "==", lexiconName).
		To(query.New().Read("Feature"))
	result := s.Gits.Query().Execute(qry)

	featured := make(map[int]transport.TransportEntity)
	for _, entity := range result.Entities {
		featured[entity.ID] = entity
	}
	return featured
}

// ListLexicons returns the names of all memorized lexicons
func (s *Store) ListLexicons() []string {
	result := s.Gits.Query().Execute(query.New().Read("Lexicon"))
	names := make([]string, 0, len(result.Entities))
	for _, entity := range result.Entities {
		names = append(names, entity.Value)
	}
	sort.Strings(names)
	return names
}

// RecordDerivation persists one derivation outcome into history
func (s *Store) RecordDerivation(record DerivationRecord) {
	s.Gits.MapData(transport.TransportEntity{
		ID:      storage.MAP_FORCE_CREATE,
		Type:    "Derivation",
		Value:   record.Sentence,
		Context: "History",
		Properties: map[string]string{
			"RunID":   record.RunID,
			"Lexicon": record.Lexicon,
			"Status":  record.Status,
			"Result":  record.Result,
			"Steps":   strconv.Itoa(record.Steps),
		},
	})
	s.log.Debug(archivist.DEBUG_LEVEL_TRACE, "memory recorded derivation run=", record.RunID, " status=", record.Status)
}

// Derivations returns all remembered derivation outcomes
func (s *Store) Derivations() []DerivationRecord {
	result := s.Gits.Query().Execute(query.New().Read("Derivation"))
	records := make([]DerivationRecord, 0, len(result.Entities))
	for _, entity := range result.Entities {
		steps, _ := strconv.Atoi(entity.Properties["Steps"])
		records = append(records, DerivationRecord{
			RunID:    entity.Properties["RunID"],
			Sentence: entity.Value,
			Lexicon:  entity.Properties["Lexicon"],
			Status:   entity.Properties["Status"],
			Result:   entity.Properties["Result"],
			Steps:    steps,
		})
	}
	return records
}

func (s *Store) lexemeToItem(entity transport.TransportEntity) (grammar.LexItem, error) {
	features := entity.Children()
	sortByOrder(features)
	feats := make([]grammar.Feature, 0, len(features))
	for _, featureEntity := range features {
		feat, err := lexicon.ParseFeature(featureEntity.Value)
		if err != nil {
			return grammar.LexItem{}, err
		}
		feats = append(feats, feat)
	}
	return grammar.NewLexItem(entity.Value, feats...), nil
}

func sortByOrder(entities []transport.TransportEntity) {
	sort.SliceStable(entities, func(i, j int) bool {
		a, _ := strconv.Atoi(entities[i].Properties["Order"])
		b, _ := strconv.Atoi(entities[j].Properties["Order"])
		return a < b
	})
}
