package ui

// styles is the single stylesheet shared by every page.
const styles = `
:root {
	--accent: #4f46e5;
	--accent-deep: #3730a3;
	--ok: #059669;
	--warn: #d97706;
	--bad: #dc2626;
	--page: #f4f5f7;
	--surface: #fff;
	--ink: #111827;
	--muted: #6b7280;
	--line: #e5e7eb;
	--radius: 10px;
}

* { box-sizing: border-box; margin: 0; padding: 0; }
body { font: 15px/1.55 system-ui, -apple-system, 'Segoe UI', sans-serif; background: var(--page); color: var(--ink); }

.navbar { display: flex; align-items: center; justify-content: space-between; padding: 0.9rem 2rem; background: var(--ink); color: #fff; }
.nav-brand { font-weight: 700; letter-spacing: 0.02em; }
.nav-links a { color: #d1d5db; text-decoration: none; margin-left: 1.5rem; }
.nav-links a:hover { color: #fff; }

.container { max-width: 1180px; margin: 0 auto; padding: 2rem; }
.footer { padding: 1.5rem; text-align: center; color: var(--muted); font-size: 0.85rem; }
h1 { margin-bottom: 1.25rem; font-size: 1.6rem; }
h2 { margin-bottom: 0.75rem; font-size: 1.1rem; }

.section, .panel, .template-list, .preview-panel {
	background: var(--surface);
	border: 1px solid var(--line);
	border-radius: var(--radius);
	padding: 1.25rem;
	margin-bottom: 1.25rem;
}

.stats-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(160px, 1fr)); gap: 1rem; }
.stat-card { border: 1px solid var(--line); border-radius: var(--radius); padding: 1rem; text-align: center; }
.stat-value { font-size: 2rem; font-weight: 700; color: var(--accent); }
.stat-label { font-size: 0.8rem; color: var(--muted); text-transform: uppercase; letter-spacing: 0.06em; }

button { padding: 0.55rem 1.1rem; border: 0; border-radius: 6px; background: var(--accent); color: #fff; font-size: 0.95rem; cursor: pointer; }
button:hover, button.active { background: var(--accent-deep); }
button:disabled { background: var(--muted); cursor: wait; }

.filter-bar { display: flex; align-items: center; gap: 0.5rem; margin-bottom: 1rem; }
.refresh-bar, .hint { color: var(--muted); font-size: 0.85rem; }
.refresh-bar { margin-bottom: 0.75rem; }
.loading { padding: 2rem; text-align: center; color: var(--muted); }

.templates-grid { display: grid; grid-template-columns: 280px 1fr; gap: 1.25rem; }
.template-item { padding: 0.75rem; border-radius: 6px; cursor: pointer; }
.template-item:hover { background: var(--page); }
.template-item.active { background: var(--accent); color: #fff; }
.template-item h3 { font-size: 0.95rem; }
.template-item p { font-size: 0.8rem; color: var(--muted); }
.template-item.active p { color: #e0e7ff; }

.score-form { max-width: 760px; }
.form-group { margin-bottom: 1rem; }
.form-group label { display: block; margin-bottom: 0.35rem; font-weight: 600; }
.form-group textarea { width: 100%; padding: 0.6rem; font: 13px/1.4 ui-monospace, monospace; border: 1px solid var(--line); border-radius: 6px; }
.form-group textarea:focus { outline: 2px solid var(--accent); border-color: transparent; }
.result { margin-top: 1rem; padding: 0.75rem; border-radius: 6px; background: var(--page); }

.score-total { font-size: 2.75rem; font-weight: 800; }
.grade-A { color: var(--ok); }
.grade-B { color: var(--accent); }
.grade-C { color: var(--warn); }
.grade-F { color: var(--bad); }
.deductions { margin-top: 0.75rem; font-size: 0.85rem; color: var(--muted); }

.loading-spinner { display: inline-block; width: 14px; height: 14px; border: 2px solid var(--line); border-top-color: var(--accent); border-radius: 50%; animation: spin 0.8s linear infinite; }
@keyframes spin { to { transform: rotate(360deg); } }

@media (max-width: 760px) {
	.templates-grid { grid-template-columns: 1fr; }
	.nav-links a { margin-left: 0.75rem; }
}
`
