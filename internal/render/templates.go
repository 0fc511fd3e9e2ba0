package render

// layoutCSS is the structural stylesheet appended after the token block.
// Every color and size that a theme can customize reads a token variable;
// nothing here hardcodes themed values.
const layoutCSS = `
* { box-sizing: border-box; margin: 0; padding: 0; }

html, body {
  height: 100%;
  background: var(--detailBg);
  font-family: var(--font);
  font-size: var(--baseFontSize);
  color: var(--pageText);
  overflow: hidden;
}

#book {
  position: relative;
  width: 1280px;
  height: 800px;
  margin: 0 auto;
  display: flex;
  transform-origin: top left;
  background: var(--pageBg);
  background-image: var(--backgroundImage);
  background-size: var(--backgroundSize);
  background-position: center;
  border: 1px solid var(--pageBorder);
}

/* ===== Tab strip ===== */
.tab-strip {
  width: 96px;
  flex: none;
  display: flex;
  flex-direction: column;
  background: var(--tabStripBg);
  padding: 12px 6px;
  gap: 4px;
}
.tab {
  position: relative;
  border: none;
  background: var(--tabBg);
  color: var(--tabText);
  font-family: inherit;
  padding: 8px 6px;
  border-radius: 6px 0 0 6px;
  cursor: pointer;
  text-align: left;
}
.tab[disabled] { opacity: 0.45; cursor: default; }
.tab.active { background: var(--tabActiveBg); color: var(--tabActiveText); font-weight: bold; }
.tab.populated .dot {
  position: absolute;
  right: 8px;
  top: 50%;
  width: 6px;
  height: 6px;
  margin-top: -3px;
  border-radius: 50%;
  background: var(--tabPopulatedDot);
}
.scraps-tab { margin-top: auto; }

/* ===== Month spread ===== */
.pages { flex: 1; position: relative; }
.month-view { position: absolute; inset: 0; overflow: hidden; }
.spread { display: flex; height: 100%; background-size: cover; background-position: center; }
.spread > .page { flex: 1; padding: 24px; overflow: hidden; }
.spread > .page:first-child { box-shadow: inset calc(-1 * 1px) 0 0 var(--pageBorder), var(--seamShadow); }

.month-label { color: var(--dashboardTitleText); margin-bottom: 16px; }

.widget {
  background: var(--dashboardCardBg);
  border: 1px solid var(--dashboardCardBorder);
  border-radius: 8px;
  padding: 12px;
  margin-bottom: 12px;
  color: var(--widgetText);
}
.widget h3 { color: var(--dashboardTitleText); margin-bottom: 6px; font-size: 0.9em; }
.checklist { list-style: none; }
.checklist .box { margin-right: 6px; }
.checklist .done { color: var(--checklistDoneText); text-decoration: line-through; }

/* ===== Calendar ===== */
.date-header {
  background: var(--dateHeaderBg);
  color: var(--dateHeaderText);
  padding: 8px 12px;
  border-radius: 6px;
  font-weight: bold;
  margin-bottom: 10px;
}
.calendar-grid {
  display: grid;
  grid-template-columns: repeat(7, 1fr);
  grid-template-rows: auto repeat(6, 1fr);
  gap: 2px;
  height: calc(100% - 110px);
}
.weekday { text-align: center; font-size: 0.7em; color: var(--calendarDayText); padding: 2px 0; }
.cell {
  position: relative;
  background: var(--calendarCellBg);
  border: 1px solid var(--calendarCellBorder);
  border-radius: 4px;
  overflow: hidden;
}
.cell.empty { background: transparent; border-color: transparent; }
.cell.has-items { cursor: pointer; }
.cell.today { outline: 2px solid var(--calendarTodayRing); outline-offset: -2px; }
.day-num { position: absolute; top: 2px; left: 4px; font-size: 0.7em; color: var(--calendarDayText); z-index: 1; }
.day-cover { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover; opacity: 0.8; }
.count-badge {
  position: absolute;
  right: 3px;
  bottom: 3px;
  min-width: 16px;
  text-align: center;
  font-size: 0.65em;
  border-radius: 8px;
  background: var(--countBadgeBg);
  color: var(--countBadgeText);
  z-index: 1;
}
.link-bar {
  display: flex;
  gap: 10px;
  flex-wrap: wrap;
  margin-top: 8px;
  padding: 8px 12px;
  border-radius: 6px;
  background: var(--linkBarBg);
}
.link-bar a { color: var(--linkBarText); }

/* ===== Detail pages ===== */
.detail-view { position: absolute; inset: 0; background: var(--detailBg); }
.detail-header { display: flex; align-items: center; gap: 10px; padding: 12px 16px; }
.detail-header h2 { flex: 1; color: var(--dashboardTitleText); font-size: 1.1em; }
.detail-header button {
  border: 1px solid var(--pageBorder);
  background: var(--pageBg);
  color: var(--pageText);
  border-radius: 6px;
  width: 32px;
  height: 32px;
  cursor: pointer;
}
.detail-header button[disabled] { opacity: 0.4; cursor: default; }
.detail-canvas { position: relative; height: calc(100% - 56px); }
.placed { position: absolute; }
.stack-slot { margin: 10px 16px; max-width: 420px; }

/* ===== Cards ===== */
.card { background: var(--noteCardBg); border-radius: 6px; overflow: hidden; }
.note-card { color: var(--noteCardText); padding: 12px; }
.note-card h3 { margin-bottom: 6px; }
.image-card img { display: block; max-width: 320px; }
.image-card figcaption { padding: 4px 8px; font-size: 0.8em; }
.video-card iframe { border: 0; width: 320px; height: 180px; display: block; }
.link-card {
  display: block;
  background: var(--linkCardBg);
  color: var(--linkCardText);
  text-decoration: none;
  padding: 10px 12px;
  max-width: 360px;
  box-shadow: var(--cardShadow);
}
.link-card .link-thumb { float: right; width: 64px; height: 64px; object-fit: cover; border-radius: 4px; margin-left: 8px; }
.link-card .link-title { display: block; font-weight: bold; }
.link-card .link-desc { display: block; font-size: 0.85em; }
.link-card .link-host { display: block; font-size: 0.75em; color: var(--linkCardHostText); margin-top: 4px; }
.sticker-card { background: transparent; }
.sticker-card img { max-width: 120px; display: block; }
.sticker-glyph { font-size: 3em; }
.placeholder-card {
  background: var(--placeholderBg);
  color: var(--placeholderText);
  padding: 14px;
  max-width: 320px;
}
.placeholder-kind { font-weight: bold; text-transform: uppercase; font-size: 0.75em; letter-spacing: 0.06em; }

/* ===== Decorations ===== */
.deco { display: inline-block; border-style: solid; border-color: var(--decoColor, var(--pageBorder)); border-width: 0; }
.deco-polaroid { background: var(--decoColor); padding: 8px 8px 28px; }
.deco-tape { position: relative; background: transparent; padding: 10px; }
.deco-tape::before {
  content: "";
  position: absolute;
  top: -8px;
  left: 50%;
  width: 70px;
  height: 20px;
  margin-left: -35px;
  background: var(--decoColor);
  opacity: 0.8;
  transform: rotate(-3deg);
}
.deco-shadowbox { background: var(--pageBg); padding: 6px; }
.deco-frame, .deco-device { background: var(--decoColor); }
.deco-inner { background: var(--pageBg); overflow: hidden; border-radius: inherit; }
.deco-plain { background: var(--pageBg); padding: 4px; }

/* ===== Month scraps and all-scraps ===== */
.month-scraps, .scraps-page .stacked {
  display: flex;
  flex-wrap: wrap;
  gap: 12px;
  padding: 12px 24px;
}
.scraps-page { padding: 24px; height: 100%; overflow: auto; }

/* ===== Empty state ===== */
.empty-state {
  margin: auto;
  text-align: center;
  color: var(--placeholderText);
}
.empty-state h1 { color: var(--dashboardTitleText); margin-bottom: 10px; }
`
