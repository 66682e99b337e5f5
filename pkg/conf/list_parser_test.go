package conf

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/alecthomas/kingpin.v2"
)

func TestStringListValue(t *testing.T) {
	Convey("While using Custom StringListValue parser", t, func() {
		strListValue := &StringListValue{}

		Convey("It should implement kingpin.Value interfaces", func() {
			So(strListValue, ShouldImplement, (*kingpin.Value)(nil))
			So(strListValue, ShouldImplement, (*kingpin.Getter)(nil))
		})

		Convey("When parsing string inputs it should append them to string slice", func() {
			So(strListValue.IsCumulative(), ShouldBeTrue)

			So(strListValue.Set("A"), ShouldBeNil)
			So(strListValue.Get(), ShouldResemble, []string{"A"})

			So(strListValue.Set("B"), ShouldBeNil)
			So(strListValue.Get(), ShouldResemble, []string{"A", "B"})

			So(strListValue.Set("C, D,,"), ShouldBeNil)
			So(strListValue.Get(), ShouldResemble, []string{"A", "B", "C", "D"})

			So(strListValue.String(), ShouldEqual, "A,B,C,D")
		})
	})
}

func TestOptionalFloatValue(t *testing.T) {
	Convey("While using OptionalFloatValue parser", t, func() {
		value := &OptionalFloatValue{}

		Convey("It should implement kingpin.Value interfaces", func() {
			So(value, ShouldImplement, (*kingpin.Value)(nil))
			So(value, ShouldImplement, (*kingpin.Getter)(nil))
		})

		Convey("It should be unset at start", func() {
			So(value.Pointer(), ShouldBeNil)
			So(value.String(), ShouldEqual, "")
		})

		Convey("It should keep parsed value", func() {
			So(value.Set("12.5"), ShouldBeNil)
			So(*value.Pointer(), ShouldEqual, 12.5)
			So(value.String(), ShouldEqual, "12.5")
		})

		Convey("It should reject garbage", func() {
			So(value.Set("abc"), ShouldNotBeNil)
			So(value.Pointer(), ShouldBeNil)
		})
	})
}
