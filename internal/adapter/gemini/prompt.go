package gemini

import (
	"fmt"
	"strings"

	"github.com/dreamlog/backend/internal/domain"
)

// Per-locale prompt contracts. Each instructs the model to return prose
// only, no questions, no subheadings, and to answer with the exact
// sentinel phrase when the input is meaningless.
const (
	interpretPromptTR = `Bu rüyanın sembolik ve psikolojik analizini yap, cevap olarak sadece rüya analizini dön herhangi bir soru sorma, girdi olarak verilen rüya anlamsızsa, random harflerden ya da sayılardan oluşuyorsa cevap olarak 'Analiz Yapılamadı' cevabını dön, cevapta alt başlıklar olmasın sadece paragraf yaz : %s`

	interpretPromptEN = `Write a symbolic and psychological analysis of this dream. Return only the analysis itself, do not ask any questions and do not use subheadings, write a single prose paragraph. If the input is meaningless or consists of random letters or numbers, answer with exactly 'Analysis Failed' : %s`

	sentinelTR = "Analiz Yapılamadı"
	sentinelEN = "Analysis Failed"

	fallbackTR = "Analiz yapılamadı"
	fallbackEN = "Analysis could not be performed"
)

// interpretPrompt embeds the raw dream content into the locale's template.
func interpretPrompt(locale domain.Locale, dreamContent string) string {
	if locale == domain.LocaleEN {
		return fmt.Sprintf(interpretPromptEN, dreamContent)
	}
	return fmt.Sprintf(interpretPromptTR, dreamContent)
}

// categorizePrompt builds the constrained-choice categorization prompt.
// The filter-only "all" value is never offered to the model.
func categorizePrompt(dreamContent string) string {
	labels := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		labels[i] = string(c)
	}
	return fmt.Sprintf(
		`Decide which one of the following categories this dream belongs to and answer with exactly that single word, no explanation: %s : %s`,
		strings.Join(labels, ", "), dreamContent)
}

// sentinel returns the locale's "analysis failed" phrase. A response equal
// to it (after sanitation and trimming) is a semantic failure, not prose.
func sentinel(locale domain.Locale) string {
	if locale == domain.LocaleEN {
		return sentinelEN
	}
	return sentinelTR
}

// FallbackAnalysis is the localized placeholder stored on a record when
// the endpoint fails transport-wise but the submission proceeds anyway.
func FallbackAnalysis(locale domain.Locale) string {
	if locale == domain.LocaleEN {
		return fallbackEN
	}
	return fallbackTR
}
