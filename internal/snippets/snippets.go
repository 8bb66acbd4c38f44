// Package snippets holds the languages codepad can run and the starter
// program loaded into the editor when a language is selected.
package snippets

// Language describes one selectable language.
type Language struct {
	ID       string // Sent to the server as "language"
	Label    string // Shown in the language picker
	EditorID string // Language id handed to the editor
	Lexer    string // chroma lexer name used for highlighting
}

// DefaultLanguage is selected when neither the flag nor the config names one.
const DefaultLanguage = "python"

var languages = []Language{
	{ID: "python", Label: "Python", EditorID: "python", Lexer: "python"},
	{ID: "c", Label: "C", EditorID: "c", Lexer: "c"},
	{ID: "cpp", Label: "C++", EditorID: "cpp", Lexer: "cpp"},
	{ID: "java", Label: "Java", EditorID: "java", Lexer: "java"},
	{ID: "r", Label: "R", EditorID: "r", Lexer: "r"},
}

// Each snippet echoes one line of stdin so a fresh session can be run as-is.
var defaults = map[string]string{
	"python": "print(input())",
	"c": `#include <stdio.h>
int main() {
    char s[100];
    fgets(s, 100, stdin);
    printf("%s", s);
    return 0;
}`,
	"cpp": `#include <iostream>
using namespace std;
int main() {
    string s;
    getline(cin, s);
    cout << s << endl;
    return 0;
}`,
	"java": `import java.util.*;
public class Main {
    public static void main(String[] args) {
        Scanner sc = new Scanner(System.in);
        String s = sc.nextLine();
        System.out.println(s);
    }
}`,
	"r": `cat(readLines('stdin'), sep='\n')`,
}

// All returns the selectable languages in picker order.
func All() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// IDs returns the language ids in picker order.
func IDs() []string {
	ids := make([]string, len(languages))
	for i, l := range languages {
		ids[i] = l.ID
	}
	return ids
}

// Lookup returns the language with the given id.
func Lookup(id string) (Language, bool) {
	for _, l := range languages {
		if l.ID == id {
			return l, true
		}
	}
	return Language{}, false
}

// Resolve returns id if it is known, otherwise DefaultLanguage.
func Resolve(id string) string {
	if _, ok := Lookup(id); ok {
		return id
	}
	return DefaultLanguage
}

// EditorID maps a language id to the editor's language id. Unknown ids pass through.
func EditorID(id string) string {
	if l, ok := Lookup(id); ok {
		return l.EditorID
	}
	return id
}

// Default returns the starter program for id. An entry in overrides wins over
// the built-in snippet; an unknown language yields "".
func Default(id string, overrides map[string]string) string {
	if s, ok := overrides[id]; ok {
		return s
	}
	return defaults[id]
}
