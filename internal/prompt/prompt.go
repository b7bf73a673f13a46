package prompt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Translation builds the prompts for translating one chunk. The system
// prompt carries role, task and target language plus the optional domain
// directive and glossary block; the user prompt embeds the literal text and,
// when requested, the summary instruction. The model is asked to format its
// output with the 【翻译结果】/【摘要】 markers the parser prefers.
func Translation(text, sourceLang, targetLang, domain string, glossary map[string]string, wantSummary bool) (string, string) {
	var system strings.Builder
	fmt.Fprintf(&system, `You are a professional translation assistant skilled in multilingual translation.

Task: translate the following %s text into %s.

Requirements:
1. Translate accurately and fluently.
2. Preserve the tone and style of the original text.
3. Output only the translated %s text, do not include the original.`,
		sourceLang, targetLang, targetLang)

	if domain != "" {
		fmt.Fprintf(&system, "\n\nDomain: %s. Use the terminology and phrasing of this field.", domain)
	}

	if len(glossary) > 0 {
		system.WriteString("\n\nGlossary (must be followed exactly):")
		for _, key := range sortedKeys(glossary) {
			fmt.Fprintf(&system, "\n- %s: %s", key, glossary[key])
		}
	}

	var user strings.Builder
	fmt.Fprintf(&user, "Text to translate:\n%s\n\nOutput the translation prefixed with the marker 【翻译结果】.", text)
	if wantSummary {
		user.WriteString("\n\nAfter the translation, add a short summary of the content (no more than 100 words) prefixed with the marker 【摘要】.")
	}

	return system.String(), user.String()
}

// Detection builds the prompts for identifying the language of a text
// sample. The model must answer with exactly one label from the closed set,
// or the fallback label when it cannot decide.
func Detection(sample string, languages []string, fallback string) (string, string) {
	system := fmt.Sprintf(`You are a language identification expert.

Task: identify the language of the given text and output only its name, chosen from this list:

%s

Rules:
1. Output the language name only, nothing else.
2. If the language cannot be determined, output "%s".`,
		strings.Join(languages, ", "), fallback)

	user := fmt.Sprintf("Identify the language of the following text:\n\n%s\n\nOutput only the language name.", sample)
	return system, user
}

// Summary builds the prompts for summarizing a translated text. A non-empty
// template overrides the built-in system prompt; it may reference
// {target_lang} and {max_length}.
func Summary(sample, targetLang string, maxLength int, template string) (string, string) {
	var system string
	if template != "" {
		system = strings.NewReplacer(
			"{target_lang}", targetLang,
			"{max_length}", strconv.Itoa(maxLength),
		).Replace(template)
	} else {
		system = fmt.Sprintf(`You are a summarization expert for %s texts.

Task: write a short summary of the given %s text (no more than %d characters).

Requirements:
1. Capture the main content of the text accurately.
2. Keep the wording brief and clear.
3. Output only the summary, nothing else.`,
			targetLang, targetLang, maxLength)
	}

	user := fmt.Sprintf("Summarize the following text:\n\n%s\n\nOutput only the summary (no more than %d characters).", sample, maxLength)
	return system, user
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
