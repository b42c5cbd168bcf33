// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
)

// ============================================================================
// CANNED ANSWERS
// ============================================================================

// faqEntry is one canned answer. An entry matches when the question
// contains any of its keywords; more hits rank higher.
type faqEntry struct {
	Keywords   []string
	Answer     string
	Related    []string
	Collection string
}

func defaultFAQ(org string) []faqEntry {
	return []faqEntry{
		{
			Keywords: []string{"epr", "extended producer"},
			Answer: "**Extended Producer Responsibility (EPR)** makes producers, importers and brand owners " +
				"responsible for collecting and recycling the plastic packaging they put on the market.\n" +
				"- Register with the CPCB portal\n" +
				"- Meet yearly collection and recycling targets\n" +
				"- File annual returns",
			Related:    []string{"Who needs EPR registration?", "What are the EPR targets?"},
			Collection: "epr_basics",
		},
		{
			Keywords: []string{"register", "registration", "portal", "who needs"},
			Answer: "Producers, importers and brand owners (PIBOs) that use plastic packaging must register " +
				"on the *CPCB EPR portal* before placing products on the market. See https://eprplastic.cpcb.gov.in for the form.",
			Related:    []string{"What documents are needed to register?", "How long does registration take?"},
			Collection: "registration",
		},
		{
			Keywords: []string{"target", "credit", "certificate"},
			Answer: "EPR targets are met with **plastic credit certificates** issued by registered recyclers. " +
				"Each certificate covers a tonnage of a plastic category (I to IV).",
			Related:    []string{"How are plastic credits priced?", "Which plastic categories exist?"},
			Collection: "credits",
		},
		{
			Keywords: []string{"recycl", "waste", "plastic"},
			Answer: fmt.Sprintf("%s works with a network of registered recyclers and waste collectors to "+
				"process post-consumer plastic. Recycled volumes are documented for your EPR filings.", org),
			Related:    []string{"What is plastic neutrality?", "How is recycling verified?"},
			Collection: "recycling",
		},
		{
			Keywords: []string{"penalty", "fine", "non-compliance", "audit"},
			Answer: "Missing EPR targets can lead to **environmental compensation** charges and suspension " +
				"of registration. Shortfalls carry forward to the next year.",
			Related:    []string{"How is environmental compensation calculated?", "Can a shortfall be carried forward?"},
			Collection: "penalties",
		},
		{
			Keywords: []string{"price", "pricing", "cost", "quote", "fee"},
			Answer: fmt.Sprintf("Pricing depends on your plastic category and annual volume. "+
				"The %s team prepares a quote after a short consultation; write to sales@recircle.in to start.", org),
			Related:    []string{"What affects the price of plastic credits?"},
			Collection: "pricing",
		},
	}
}

// fallbackAnswer is used when no entry matches.
func fallbackAnswer(org string) faqEntry {
	return faqEntry{
		Answer: fmt.Sprintf("I don't have a specific answer for that yet. You can ask about EPR registration, "+
			"plastic credits or recycling targets, or ask to speak with the %s team.", org),
		Related:    []string{"What is EPR?", "Who needs EPR registration?"},
		Collection: "fallback",
	}
}

// lookup returns the best entry for the question and its keyword hit ratio.
func (s *Server) lookup(question string) (faqEntry, float64) {
	q := cases.Fold().String(question)

	best, bestHits := -1, 0
	for i, e := range s.faq {
		hits := 0
		for _, k := range e.Keywords {
			if strings.Contains(q, k) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = i, hits
		}
	}
	if best < 0 {
		return fallbackAnswer(s.cfg.Organization), 0
	}
	e := s.faq[best]
	return e, math.Min(1, 0.5+0.25*float64(bestHits))
}

// ============================================================================
// INTENT
// ============================================================================

type intentPattern struct {
	Name     string
	Keywords []string
	Phrases  []string
	Weight   float64
}

var intentPatterns = []intentPattern{
	{
		Name: "high_interest",
		Keywords: []string{
			"need help", "interested in", "get started", "need assistance",
			"cost of", "pricing", "price", "quote", "proposal", "consultation",
		},
		Phrases: []string{"can you help us", "we need to", "our company needs", "looking for a partner"},
		Weight:  0.8,
	},
	{
		Name:     "business_inquiry",
		Keywords: []string{"business", "company", "organization", "manufacturer", "importer", "brand owner"},
		Phrases:  []string{"for our business", "my company", "we manufacture", "we import"},
		Weight:   0.7,
	},
	{
		Name:     "urgent_need",
		Keywords: []string{"urgent", "asap", "immediately", "deadline", "penalty", "audit", "fine"},
		Phrases:  []string{"need it urgently", "facing penalty", "audit coming up"},
		Weight:   0.9,
	},
	{
		Name:     "service_specific",
		Keywords: []string{"certificate", "registration", "recycling partner", "epr compliance"},
		Phrases:  []string{"need epr certificate", "want to register", "looking for pro"},
		Weight:   0.8,
	},
}

// connectAfterTurns suggests a handoff once the conversation is this long.
const connectAfterTurns = 4

// detectIntent scores the question against the intent patterns. Phrases
// weigh 1.2 times a keyword.
func detectIntent(question string, history int) backend.Intent {
	q := cases.Fold().String(question)

	best, bestScore := "general_inquiry", 0.0
	for _, p := range intentPatterns {
		score := 0.0
		for _, k := range p.Keywords {
			if strings.Contains(q, k) {
				score += p.Weight
			}
		}
		for _, ph := range p.Phrases {
			if strings.Contains(q, ph) {
				score += p.Weight * 1.2
			}
		}
		if score > bestScore {
			best, bestScore = p.Name, score
		}
	}

	confidence := 0.3
	if bestScore > 0 {
		confidence = math.Min(bestScore, 1)
	}
	return backend.Intent{
		Type:          best,
		Confidence:    confidence,
		ShouldConnect: best != "general_inquiry" || history >= connectAfterTurns,
	}
}

// engagementScore grows with conversation length and intent strength.
func engagementScore(history int, in backend.Intent) float64 {
	score := 0.2 + 0.1*float64(history)
	if in.Type != "general_inquiry" {
		score += 0.2
	}
	return math.Min(score, 1)
}

func urgencyOf(in backend.Intent) string {
	if in.Type == "urgent_need" {
		return "high"
	}
	return "normal"
}

// answer builds the full /query response.
func (s *Server) answer(question string, history int) backend.QueryResponse {
	entry, similarity := s.lookup(question)
	in := detectIntent(question, history)

	suggestions := append([]string(nil), entry.Related...)
	if in.ShouldConnect {
		suggestions = append(suggestions, "Connect me to "+s.cfg.Organization)
	}

	return backend.QueryResponse{
		Answer:           entry.Answer,
		SimilarQuestions: suggestions,
		Intent:           &in,
		Context: &backend.QueryContext{
			Urgency:         urgencyOf(in),
			EngagementScore: engagementScore(history, in),
		},
		SourceInfo: &backend.SourceInfo{
			Source:     "faq",
			Collection: entry.Collection,
			Similarity: similarity,
		},
	}
}
