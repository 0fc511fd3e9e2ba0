// Package script emits the navigation script embedded in exported
// documents. The script is dependency-free and carries its day-navigation
// order precomputed at generation time, so the exported document never
// rebuilds it client-side.
package script

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Compose renders the script for one artifact. days is the sorted list of
// day keys that have detail pages; width and height are the fixed design
// dimensions the auto-fit behavior scales against.
func Compose(days []string, width, height int) (string, error) {
	if days == nil {
		days = []string{}
	}
	dayList, err := json.Marshal(days)
	if err != nil {
		return "", fmt.Errorf("encoding day list: %w", err)
	}
	out := strings.Replace(navScript, "__DAYS__", string(dayList), 1)
	out = strings.Replace(out, "__WIDTH__", fmt.Sprint(width), 1)
	out = strings.Replace(out, "__HEIGHT__", fmt.Sprint(height), 1)
	return out, nil
}

// navScript implements three independent behaviors on a small state
// machine: {month view, detail view} x active month/day. DAYS is injected
// sorted; prev/next are no-ops at either end.
const navScript = `(function() {
  "use strict";

  var DAYS = __DAYS__;
  var DESIGN_WIDTH = __WIDTH__;
  var DESIGN_HEIGHT = __HEIGHT__;

  var state = {
    view: "month",
    month: null,
    day: null
  };

  var book = document.getElementById("book");

  function monthViews() {
    return document.querySelectorAll(".month-view");
  }

  function detailViews() {
    return document.querySelectorAll(".detail-view");
  }

  // ===== Month switching =====

  function showMonth(key) {
    closeDetail();
    monthViews().forEach(function(v) {
      v.hidden = v.id !== "month-" + key;
    });
    document.querySelectorAll(".tab[data-month]").forEach(function(tab) {
      tab.classList.toggle("active", tab.getAttribute("data-month") === key);
    });
    state.view = "month";
    state.month = key;
  }

  document.querySelectorAll(".tab[data-month]").forEach(function(tab) {
    tab.addEventListener("click", function() {
      showMonth(tab.getAttribute("data-month"));
    });
  });

  var initialTab = document.querySelector(".tab.active[data-month]");
  if (initialTab) {
    state.month = initialTab.getAttribute("data-month");
  }

  // ===== Detail navigation =====

  function openDetail(day) {
    var view = document.getElementById("detail-" + day);
    if (!view) return;
    monthViews().forEach(function(v) { v.hidden = true; });
    detailViews().forEach(function(v) { v.hidden = v.id !== "detail-" + day; });
    state.view = "detail";
    state.day = day;
    updateDetailButtons(view, day);
  }

  function closeDetail() {
    if (state.view !== "detail") return;
    detailViews().forEach(function(v) { v.hidden = true; });
    state.view = "month";
    state.day = null;
    if (state.month) {
      var view = document.getElementById("month-" + state.month);
      if (view) view.hidden = false;
    }
  }

  function stepDetail(delta) {
    var idx = DAYS.indexOf(state.day);
    if (idx === -1) return;
    var next = idx + delta;
    if (next < 0 || next >= DAYS.length) return;
    openDetail(DAYS[next]);
  }

  function updateDetailButtons(view, day) {
    var idx = DAYS.indexOf(day);
    var prev = view.querySelector(".detail-prev");
    var next = view.querySelector(".detail-next");
    if (prev) prev.disabled = idx <= 0;
    if (next) next.disabled = idx >= DAYS.length - 1;
  }

  document.querySelectorAll(".cell.has-items[data-day]").forEach(function(cell) {
    cell.addEventListener("click", function() {
      openDetail(cell.getAttribute("data-day"));
    });
  });

  detailViews().forEach(function(view) {
    var prev = view.querySelector(".detail-prev");
    var next = view.querySelector(".detail-next");
    var close = view.querySelector(".detail-close");
    if (prev) prev.addEventListener("click", function() { stepDetail(-1); });
    if (next) next.addEventListener("click", function() { stepDetail(1); });
    if (close) close.addEventListener("click", closeDetail);
  });

  // ===== Viewport auto-fit =====

  function fit() {
    if (!book) return;
    var scale = Math.min(
      window.innerWidth / DESIGN_WIDTH,
      window.innerHeight / DESIGN_HEIGHT,
      1
    );
    book.style.transform = "scale(" + scale + ")";
  }

  window.addEventListener("resize", fit);
  fit();
})();`
