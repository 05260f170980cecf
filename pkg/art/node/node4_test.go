package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hexradix/artix/internal/arena"
)

func TestNode4(t *testing.T) {
	Convey("Given an empty Node4", t, func() {
		n := &Node4[int]{}

		So(n.Kind(), ShouldEqual, KindNode4)
		So(n.full(), ShouldBeFalse)

		Convey("When adding children in arrival order", func() {
			n.addChild('b', &Leaf[int]{Value: 2})
			n.addChild('a', &Leaf[int]{Value: 1})
			n.addChild('d', &Leaf[int]{Value: 4})
			n.addChild('c', &Leaf[int]{Value: 3})

			Convey("Each child is found by its own byte", func() {
				So((*n.findChild('a')).(*Leaf[int]).Value, ShouldEqual, 1)
				So((*n.findChild('b')).(*Leaf[int]).Value, ShouldEqual, 2)
				So((*n.findChild('c')).(*Leaf[int]).Value, ShouldEqual, 3)
				So((*n.findChild('d')).(*Leaf[int]).Value, ShouldEqual, 4)
				So(n.findChild('e'), ShouldBeNil)
			})

			Convey("A fourth child reports the node as full", func() {
				So(n.Count, ShouldEqual, 4)
				So(n.full(), ShouldBeTrue)
			})
		})

		Convey("When growing to Node16", func() {
			a := &arena.Arena{}
			n.addChild('a', &Leaf[int]{Value: 1})
			n.addChild('b', &Leaf[int]{Value: 2})

			grown := n.grow(a).(*Node16[int])

			So(grown.Kind(), ShouldEqual, KindNode16)
			So(grown.Count, ShouldEqual, 2)
			So((*grown.findChild('a')).(*Leaf[int]).Value, ShouldEqual, 1)
			So((*grown.findChild('b')).(*Leaf[int]).Value, ShouldEqual, 2)
		})

		Convey("When growing a Node4 filled in non-ascending byte order", func() {
			a := &arena.Arena{}
			n.addChild(3, &Leaf[int]{Value: 30})
			n.addChild(1, &Leaf[int]{Value: 10})
			n.addChild(4, &Leaf[int]{Value: 40})
			n.addChild(2, &Leaf[int]{Value: 20})

			grown := n.grow(a).(*Node16[int])

			Convey("Its keys come out sorted ascending, not in arrival order", func() {
				So(grown.Keys[:grown.Count], ShouldResemble, []byte{1, 2, 3, 4})
			})

			Convey("Binary search still finds every child by its byte", func() {
				So((*grown.findChild(1)).(*Leaf[int]).Value, ShouldEqual, 10)
				So((*grown.findChild(2)).(*Leaf[int]).Value, ShouldEqual, 20)
				So((*grown.findChild(3)).(*Leaf[int]).Value, ShouldEqual, 30)
				So((*grown.findChild(4)).(*Leaf[int]).Value, ShouldEqual, 40)
			})
		})
	})
}
