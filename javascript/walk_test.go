package javascript

import (
	"testing"
)

func TestWalkVisitsInDocumentOrder(t *testing.T) {
	src := []byte(`
import { css } from 'react-with-styles';
foo(styles.a);
bar(styles.b);
`)

	var events []string
	Walk(Parse(src), Visitor{
		EnterImport: func(*ImportDeclaration) { events = append(events, "import") },
		EnterCall: func(c *CallExpression) {
			events = append(events, "call:"+Content(c.Callee, src))
		},
		EnterMember: func(m *MemberExpression) {
			events = append(events, "member:"+Content(m, src))
		},
	})

	want := []string{"import", "call:foo", "member:styles.a", "call:bar", "member:styles.b"}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(events), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: want %q, got %q", i, want[i], events[i])
		}
	}
}

func TestWalkReachesNestedExpressions(t *testing.T) {
	// member accesses buried in syntax the converter does not model
	// (classes, JSX, conditionals) must still be visited
	src := []byte(`
class Foo extends React.Component {
  render() {
    return cond ? <div {...css(styles.a)} /> : <span>{styles.b.thing}</span>;
  }
}
`)

	seen := map[string]bool{}
	Walk(Parse(src), Visitor{
		EnterMember: func(m *MemberExpression) {
			seen[Content(m, src)] = true
		},
	})

	for _, want := range []string{"styles.a", "styles.b", "styles.b.thing"} {
		if !seen[want] {
			t.Errorf("never visited %s (saw %v)", want, seen)
		}
	}
}

func TestWalkNilSafe(t *testing.T) {
	Walk(nil, Visitor{})
	Walk(&Program{}, Visitor{})
}
